package model

// CapsuleEnvelope is one encrypted file from POST /capsules/encrypt
type CapsuleEnvelope struct {
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	SizeBytes    int64  `json:"sizeBytes"`
	Envelope     string `json:"envelope"`
}

// CapsuleEncryptResponse represents response for POST /capsules/encrypt
type CapsuleEncryptResponse struct {
	Mode      string            `json:"mode"`
	Envelopes []CapsuleEnvelope `json:"envelopes"`
}

// CapsuleDecryptRequest represents request for POST /capsules/decrypt
type CapsuleDecryptRequest struct {
	Envelope string `json:"envelope"`
	Password string `json:"password,omitempty"`
}
