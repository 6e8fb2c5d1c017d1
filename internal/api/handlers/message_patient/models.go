package message_patient

// MessageLinkResponse HTTP response model: WhatsApp deep-link для пациента
type MessageLinkResponse struct {
	URL string `json:"url"`
}
