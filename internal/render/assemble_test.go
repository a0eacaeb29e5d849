package render_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/washyaderner/vibe-n-thrive/internal/domain"
	"github.com/washyaderner/vibe-n-thrive/internal/render"
	"github.com/washyaderner/vibe-n-thrive/internal/shared"
)

var (
	anchorRe  = regexp.MustCompile(`href="#([a-z]+)"`)
	sectionRe = regexp.MustCompile(`<section id="([a-z]+)"`)
)

func testData(t *testing.T, posts []domain.BlogPost, reviews []domain.Review) render.PageData {
	t.Helper()
	c, err := shared.LoadCopy()
	if err != nil {
		t.Fatalf("load copy: %v", err)
	}
	return render.NewPageData(c, posts, reviews)
}

func somePosts() []domain.BlogPost {
	return []domain.BlogPost{
		{
			Title: "A Post", Slug: "a-post", Body: "Body text here.",
			PublishDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Author: "Carson Goff",
		},
	}
}

func someReviews() []domain.Review {
	return []domain.Review{
		{Author: "Dana M.", Rating: 5, Text: "Wonderful.", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestAssemblePage_AllSectionsPresent(t *testing.T) {
	e, err := render.NewEngine()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	body, err := e.AssemblePage(testData(t, somePosts(), someReviews()))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	out := string(body)

	got := sectionRe.FindAllStringSubmatch(out, -1)
	if len(got) != len(render.Sections) {
		t.Fatalf("expected %d sections, found %d", len(render.Sections), len(got))
	}
	for i, sec := range render.Sections {
		if got[i][1] != sec.ID {
			t.Fatalf("section order drift at %d: got %s want %s", i, got[i][1], sec.ID)
		}
	}
}

// Navigation targets must be exactly the section ids present in the
// document: no orphan links, no missing targets.
func TestAssemblePage_NavAnchorsResolve(t *testing.T) {
	e, err := render.NewEngine()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	body, err := e.AssemblePage(testData(t, somePosts(), someReviews()))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	out := string(body)

	ids := map[string]bool{}
	for _, m := range sectionRe.FindAllStringSubmatch(out, -1) {
		ids[m[1]] = true
	}
	nav := strings.SplitN(out, "</nav>", 2)[0]
	anchors := anchorRe.FindAllStringSubmatch(nav, -1)
	if len(anchors) == 0 {
		t.Fatalf("no nav anchors found")
	}
	for _, a := range anchors {
		if !ids[a[1]] {
			t.Fatalf("orphan nav anchor #%s has no section target", a[1])
		}
	}
	for _, sec := range render.Sections {
		linked := false
		for _, a := range anchors {
			if a[1] == sec.ID {
				linked = true
			}
		}
		if sec.NavLabel != "" && !linked {
			t.Fatalf("section %s declared in nav but not linked", sec.ID)
		}
		if sec.NavLabel == "" && linked {
			t.Fatalf("section %s linked but not declared in nav", sec.ID)
		}
	}
}

func TestAssemblePage_EmptyFeedsRenderEmptyStates(t *testing.T) {
	e, err := render.NewEngine()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	body, err := e.AssemblePage(testData(t, nil, nil))
	if err != nil {
		t.Fatalf("assemble with empty feeds: %v", err)
	}
	out := string(body)

	// sections stay present with a defined empty-state, never omitted
	if len(sectionRe.FindAllString(out, -1)) != len(render.Sections) {
		t.Fatalf("empty feeds dropped a section")
	}
	if !strings.Contains(out, "New articles are on the way") {
		t.Fatalf("blog empty-state missing")
	}
	if !strings.Contains(out, "Reviews are on their way") {
		t.Fatalf("reviews empty-state missing")
	}
}

func TestAssemblePage_DefaultImageForPostsWithoutFeatured(t *testing.T) {
	e, err := render.NewEngine()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	data := testData(t, somePosts(), nil)
	body, err := e.AssemblePage(data)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(string(body), data.Practice.DefaultPostImage) {
		t.Fatalf("expected default post image in output")
	}
}

func TestAssemblePage_EscapesFeedContent(t *testing.T) {
	e, err := render.NewEngine()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	reviews := []domain.Review{
		{Author: "Evil", Rating: 5, Text: `<script>alert("x")</script>`, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	body, err := e.AssemblePage(testData(t, nil, reviews))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if strings.Contains(string(body), "<script>alert") {
		t.Fatalf("review text not escaped")
	}
}

func TestRenderSection_UnknownTemplateIsRenderError(t *testing.T) {
	e, err := render.NewEngine()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	_, err = e.RenderSection(render.Section{ID: "nonexistent"}, testData(t, nil, nil))
	var re *domain.RenderError
	if !errors.As(err, &re) {
		t.Fatalf("expected RenderError, got %v", err)
	}
	if re.Section != "nonexistent" {
		t.Fatalf("unexpected section in error: %s", re.Section)
	}
}
