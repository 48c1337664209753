package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Integridad referencial del catálogo (producto/subcategoría).
	ErrCategoryNotFound    = errors.New("la categoría no existe")
	ErrSubcategoryNotFound = errors.New("la subcategoría no existe")
	ErrSubcategoryMismatch = errors.New("la subcategoría no pertenece a la categoría indicada")
)
