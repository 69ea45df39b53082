package locales

// MessagesJaJP Japanese translations
var MessagesJaJP = map[string]string{
	// Common messages
	"success":        "操作が成功しました",
	"common.success": "成功",
	"error":          "操作が失敗しました",
	"not_found":      "見つかりません",
	"bad_request":    "不正なリクエスト",
	"internal_error": "内部エラー",
	"invalid_param":  "無効なパラメータ",

	// Project related
	"project.created":   "プロジェクトが作成されました",
	"project.deleted":   "プロジェクトが削除されました",
	"project.not_found": "プロジェクトが見つかりません",

	// Language related
	"language.created":    "言語が登録されました",
	"language.assigned":   "言語がプロジェクトに割り当てられました",
	"language.unassigned": "言語がプロジェクトから削除されました",
	"language.exists":     "言語は既に登録されています",
	"language.not_found":  "言語が見つかりません",

	// Translation key related
	"key.created":   "翻訳キーが作成されました",
	"key.deleted":   "翻訳キーが削除されました",
	"key.not_found": "翻訳キーが見つかりません",
	"key.exists":    "翻訳キーはこのプロジェクトに既に存在します",

	// Translation related
	"translation.created": "翻訳が作成されました",
	"translation.updated": "翻訳が更新されました",
	"translation.exists":  "このキーと言語の翻訳は既に存在します",
	"translation.bulk":    "{{.Total}}件中{{.Updated}}件の翻訳を更新しました",

	// Validation messages
	"validation.invalid_project_id": "無効なプロジェクトID",
	"validation.invalid_key_id":     "無効な翻訳キーID",
	"validation.invalid_language":   "無効な言語コード",
	"validation.key_required":       "キーは必須です",
	"validation.value_required":     "値は必須です",
	"validation.name_required":      "名前は必須です",
	"validation.updates_required":   "少なくとも1つの更新が必要です",
}
