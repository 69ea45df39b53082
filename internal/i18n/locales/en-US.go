package locales

// MessagesEnUS English (US) translations
var MessagesEnUS = map[string]string{
	// Common messages
	"success":        "Operation successful",
	"common.success": "Success",
	"error":          "Operation failed",
	"not_found":      "Not found",
	"bad_request":    "Bad request",
	"internal_error": "Internal error",
	"invalid_param":  "Invalid parameter",

	// Project related
	"project.created":   "Project created successfully",
	"project.deleted":   "Project deleted successfully",
	"project.not_found": "Project not found",

	// Language related
	"language.created":    "Language registered successfully",
	"language.assigned":   "Language assigned to project",
	"language.unassigned": "Language removed from project",
	"language.exists":     "Language already registered",
	"language.not_found":  "Language not found",

	// Translation key related
	"key.created":   "Translation key created successfully",
	"key.deleted":   "Translation key deleted successfully",
	"key.not_found": "Translation key not found",
	"key.exists":    "Translation key already exists in this project",

	// Translation related
	"translation.created": "Translation created successfully",
	"translation.updated": "Translation updated successfully",
	"translation.exists":  "Translation already exists for this key and language",
	"translation.bulk":    "Updated {{.Updated}} out of {{.Total}} translations",

	// Validation messages
	"validation.invalid_project_id": "Invalid project ID",
	"validation.invalid_key_id":     "Invalid translation key ID",
	"validation.invalid_language":   "Invalid language code",
	"validation.key_required":       "Key is required",
	"validation.value_required":     "Value is required",
	"validation.name_required":      "Name is required",
	"validation.updates_required":   "At least one update is required",
}
