package dto

type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type RenombrarCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type CategoriaResponse struct {
	Nombre string `json:"nombre"`
	EnUso  bool   `json:"en_uso"`
}
