package campaignservice

// CampaignPrice модель кампанийной цены из портала
type CampaignPrice struct {
	HasCampaignPrice bool   `json:"hasCampaignPrice"`
	PriceID          string `json:"priceId"`
	CampaignName     string `json:"campaignName"`
}

// ErrorResponse модель ошибки от сервиса кампаний
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
