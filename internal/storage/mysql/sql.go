package mysql

const insertMissSQL = `
INSERT INTO fetch_log (source, http_status, reason)
VALUES (?, ?, ?)
`

const recentMissesSQL = `
SELECT id, source, http_status, reason, seen_at
FROM fetch_log
ORDER BY seen_at DESC, id DESC
LIMIT ?
`
