// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
)

var ErrUserQuit = errors.New("el usuario salió del programa")

// userMessages is checked in order; the first matching sentinel wins.
var userMessages = []struct {
	target  error
	message string
}{
	{service.ErrServerUnavailable, "Sin conexión o servidor no disponible"},
	{service.ErrInvalidCredentials, "Usuario o contraseña incorrectos"},
	{service.ErrTokenIsExpiredOrInvalid, "La sesión expiró, ingresá de nuevo"},
	{service.ErrAccessDenied, "Solo un administrador puede hacer esto"},
	{service.ErrDuplicateCode, "Ese código ya lo usa otra llave"},
	{service.ErrKeyAlreadyCheckedOut, "La llave ya fue retirada"},
	{service.ErrKeyNotCheckedOut, "La llave no está retirada"},
	{service.ErrKeyAlreadyDeleted, "La llave ya fue eliminada"},
	{service.ErrKeyDeleted, "La llave está eliminada"},
	{service.ErrInvalidState, "La llave no admite esa operación"},
	{service.ErrKeyNotFound, "La llave no existe"},
	{service.ErrNotOverdue, "El retiro todavía no está vencido"},
	{service.ErrNoHolderPhone, "El retiro no tiene teléfono"},
	{validators.ErrInvalidVisibleCode, "El código debe ser una letra mayúscula y un número del 1 al 6"},
	{validators.ErrEmptyAddress, "La dirección es obligatoria"},
	{validators.ErrEmptyHolderName, "El nombre es obligatorio"},
	{validators.ErrInvalidHolderPhone, "El teléfono es obligatorio"},
	{validators.ErrEmptyReason, "El motivo es obligatorio"},
	{validators.ErrEmptyUsername, "El usuario es obligatorio"},
	{validators.ErrEmptyPassword, "La contraseña es obligatoria"},
}

// humanizeError turns err into a message for the operator.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range userMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Sin conexión o servidor no disponible"
	}

	return err.Error()
}
