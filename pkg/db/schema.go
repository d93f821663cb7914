package db

const schema = `
-- The table is rebuilt every run; durability is not needed.
PRAGMA journal_mode = OFF;
PRAGMA synchronous = OFF;
PRAGMA temp_store = MEMORY;

-- Paragraph counts: exact paragraph text -> corpus-wide occurrences
CREATE TABLE IF NOT EXISTS paragraph_counts (
    paragraph TEXT PRIMARY KEY,
    count INTEGER NOT NULL DEFAULT 0
) WITHOUT ROWID;
`
