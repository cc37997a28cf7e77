package request

type UpdateSettingRequest struct {
	Key   string `json:"setting_key" binding:"required"`
	Value string `json:"setting_value" binding:"required"`
}
