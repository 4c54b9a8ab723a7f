package dto

// CrearClienteRequest requires the three fields the legacy form required.
type CrearClienteRequest struct {
	Nombre   string `json:"nombre"   validate:"required"`
	Doc      string `json:"doc"      validate:"required"`
	Telefono string `json:"telefono" validate:"required"`
}

type ActualizarClienteRequest struct {
	Nombre   string `json:"nombre"   validate:"required"`
	Doc      string `json:"doc"      validate:"required"`
	Telefono string `json:"telefono" validate:"required"`
}

type ClienteResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Doc      string `json:"doc,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	CreadoEl string `json:"creado_el"`
}
