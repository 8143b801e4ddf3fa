package seed

// SchemaURL identifies the bundled schema inside the compiler.
const SchemaURL = "archduke://seed.schema.json"

// bundledSchema is the embedded seed document schema.
const bundledSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "ArchDuke seed document",
  "type": "object",
  "additionalProperties": false,
  "required": ["schema_version", "projects"],
  "properties": {
    "schema_version": { "type": "integer", "const": 1 },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["description"],
        "properties": {
          "description": { "type": "string", "minLength": 1, "pattern": "\\S" },
          "members": {
            "type": "array",
            "items": {
              "type": "object",
              "additionalProperties": false,
              "required": ["name"],
              "properties": {
                "name": { "type": "string", "minLength": 1, "pattern": "\\S" },
                "phone": { "type": "string" },
                "email": { "type": "string" }
              }
            }
          },
          "tasks": {
            "type": "array",
            "items": {
              "type": "object",
              "additionalProperties": false,
              "required": ["description"],
              "properties": {
                "description": { "type": "string", "minLength": 1, "pattern": "\\S" },
                "priority": { "type": "integer", "minimum": 1 },
                "due": { "$ref": "#/$defs/date" },
                "category": { "type": "string" },
                "status": { "type": "string", "enum": ["open", "todo", "doing", "done"] },
                "requirements": {
                  "type": "array",
                  "items": { "type": "string", "minLength": 1, "pattern": "\\S" }
                }
              }
            }
          },
          "assignments": {
            "type": "array",
            "items": {
              "type": "object",
              "additionalProperties": false,
              "required": ["task", "member"],
              "properties": {
                "task": { "type": "integer", "minimum": 1 },
                "member": { "type": "integer", "minimum": 1 }
              }
            }
          },
          "reminders": {
            "type": "array",
            "items": {
              "type": "object",
              "additionalProperties": false,
              "required": ["text"],
              "properties": {
                "text": { "type": "string", "minLength": 1, "pattern": "\\S" },
                "due": { "$ref": "#/$defs/date" },
                "done": { "type": "boolean" }
              }
            }
          }
        }
      }
    }
  },
  "$defs": {
    "date": { "type": "string", "pattern": "^[0-9]{1,2}/[0-9]{1,2}/[0-9]{4}$" }
  }
}`

// BundledSchema returns the embedded seed schema JSON content.
func BundledSchema() []byte {
	return []byte(bundledSchema)
}
