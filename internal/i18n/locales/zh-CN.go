package locales

// MessagesZhCN Simplified Chinese translations
var MessagesZhCN = map[string]string{
	// Common messages
	"success":        "操作成功",
	"common.success": "成功",
	"error":          "操作失败",
	"not_found":      "未找到",
	"bad_request":    "请求无效",
	"internal_error": "内部错误",
	"invalid_param":  "参数无效",

	// Project related
	"project.created":   "项目创建成功",
	"project.deleted":   "项目删除成功",
	"project.not_found": "项目不存在",

	// Language related
	"language.created":    "语言注册成功",
	"language.assigned":   "语言已分配给项目",
	"language.unassigned": "语言已从项目移除",
	"language.exists":     "语言已注册",
	"language.not_found":  "语言不存在",

	// Translation key related
	"key.created":   "翻译键创建成功",
	"key.deleted":   "翻译键删除成功",
	"key.not_found": "翻译键不存在",
	"key.exists":    "该项目中已存在此翻译键",

	// Translation related
	"translation.created": "翻译创建成功",
	"translation.updated": "翻译更新成功",
	"translation.exists":  "该键和语言的翻译已存在",
	"translation.bulk":    "已更新 {{.Total}} 条中的 {{.Updated}} 条翻译",

	// Validation messages
	"validation.invalid_project_id": "项目ID无效",
	"validation.invalid_key_id":     "翻译键ID无效",
	"validation.invalid_language":   "语言代码无效",
	"validation.key_required":       "键为必填项",
	"validation.value_required":     "值为必填项",
	"validation.name_required":      "名称为必填项",
	"validation.updates_required":   "至少需要一个更新项",
}
