package help

const ColdstartYAML = `# corpus-enricher Quick Start

stages:
  extract: "HTML pages -> raw documents (doc_id, filename, title, raw_text, paragraphs)"
  enrich: "raw documents -> enriched records, mirrored tree, same relative paths"
  validate: "enriched records -> flat <doc_id>.json for records with cleaned paragraphs"

commands:
  extract: |
    corpus-enricher extract data/html data/raw

  enrich: |
    corpus-enricher enrich data/raw data/enriched

  enrich_tuned: |
    corpus-enricher enrich --threshold 3 --config enricher.yaml --manifest run.yaml data/raw data/enriched

  large_corpus: |
    corpus-enricher enrich --frequency-store sqlite data/raw data/enriched

  validate: |
    corpus-enricher validate data/enriched data/validated

  full_run: |
    corpus-enricher extract data/html data/raw
    corpus-enricher enrich --manifest run.yaml data/raw data/enriched
    corpus-enricher validate data/enriched data/validated

environment:
  CORPUS_ENRICHER_THRESHOLD: "same as --threshold"
  CORPUS_ENRICHER_CONFIG: "same as --config"
  dotenv: "a .env file in the working directory is loaded first"

config_keys:
  threshold: "drop paragraphs seen >= N times across the corpus (default 5)"
  boilerplate_patterns: "line regexes removed before counting"
  domain: "stamped on every record"
  source: "stamped on every record"
  top_keywords: "keywords per record (default 10)"
  languages: "detector language set, at least 2 (default en, de, fr, it)"
  fallback_language: "keyword language for undetected or unsupported text"
  nlp_languages: "languages with entity and sentence models (default en, de)"
  document_timeout: "per-document enrichment budget, 0 disables (default 60s)"
  frequency_store: "memory or sqlite"

record_invariants:
  - "paragraphs_cleaned is an ordered subset of the filtered paragraphs"
  - "main_content is paragraphs_cleaned joined with newlines"
  - "date is YYYY-MM-01 from the relative path, or empty"
  - "sequences are [] never null; year and month may be null"
  - "re-running on the same input gives identical records"

exit_codes:
  0: "success, even if some documents failed (see logs or manifest)"
  1: "usage error or interrupted run"
  2: "configuration or setup failure, nothing written"
`
