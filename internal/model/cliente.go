package model

// Cliente is an address-book entry, independent of any Deuda.
type Cliente struct {
	ID       string `json:"id"`
	Nombre   string `json:"name"`
	Doc      string `json:"doc,omitempty"`
	Telefono string `json:"phone,omitempty"`
	CreadoEl string `json:"createdAt"`
}
