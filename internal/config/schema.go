package config

// ConfigSchema is the JSON schema config files are checked against
const ConfigSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "temp": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "dir": {"type": "string"},
        "prefix": {"type": "string"},
        "suffix": {"type": "string"},
        "file_mode": {"type": "string", "pattern": "^(0?[0-7]{3})?$"},
        "dir_mode": {"type": "string", "pattern": "^(0?[0-7]{3})?$"}
      }
    },
    "session": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "id": {"type": "string"},
        "track": {"type": "boolean"}
      }
    },
    "logging": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "level": {"type": "string", "enum": ["debug", "info", "warn", "error"]},
        "file": {"type": "string"},
        "pretty": {"type": "boolean"}
      }
    }
  }
}`
