package service

import (
	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	KeyService     ClientKeyService
	AuditService   ClientAuditService
	AccountService ClientAccountService
}

func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(sessions, serverAdapter, logger),
		KeyService:     NewClientKeyService(serverAdapter, logger),
		AuditService:   NewClientAuditService(serverAdapter, logger),
		AccountService: NewClientAccountService(serverAdapter),
	}
}
