package aiprovider

// Part текстовый фрагмент содержимого.
type Part struct {
	Text string `json:"text"`
}

// Content набор фрагментов одного сообщения.
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerateContentRequest запрос к generateContent.
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

// GenerateContentResponse ответ generateContent.
type GenerateContentResponse struct {
	Candidates []struct {
		Content      Content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

// ErrorResponse ошибка Gemini API.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
