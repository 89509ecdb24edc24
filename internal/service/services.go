package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/crypto"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/session"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
	"github.com/MKhiriev/go-pass-envelope/internal/utils"
)

// ClientServices is everything the vault client needs. The services share
// one session manager and one account locker.
type ClientServices struct {
	EnvelopeService EnvelopeService
	EntryService    EntryService
	ExportService   ExportService
	EntryVault      EntryVault
	AutoLockJob     AutoLockJob

	Sessions *session.Manager
	Locker   *AccountLocker
}

// NewClientServices wires the client services. envelopes is the envelope
// document store picked by the caller (remote adapter or a local backend).
func NewClientServices(envelopes store.EnvelopeStore, storages *store.ClientStorages, cfg config.ClientConfig, log *logger.Logger) (*ClientServices, error) {
	kdfName, err := crypto.ParseKDF(cfg.Crypto.KDF)
	if err != nil {
		return nil, fmt.Errorf("error configuring key derivation: %w", err)
	}
	kdf, err := crypto.NewKeyDerivation(kdfName, crypto.KDFParams{
		ArgonTime:        cfg.Crypto.ArgonTime,
		ArgonMemory:      cfg.Crypto.ArgonMemory,
		ArgonThreads:     cfg.Crypto.ArgonThreads,
		PBKDF2Iterations: cfg.Crypto.PBKDF2Iterations,
	})
	if err != nil {
		return nil, fmt.Errorf("error configuring key derivation: %w", err)
	}

	vault := NewEntryVault(kdf, crypto.NewAuthenticatedCipher())
	sessions := session.NewManager()
	locker := NewAccountLocker()
	ids := utils.NewUUIDGenerator()

	return &ClientServices{
		EnvelopeService: NewEnvelopeService(envelopes, storages.Entries, vault, sessions, locker, cfg, log),
		EntryService:    NewEntryService(storages.Entries, vault, locker, ids, log),
		ExportService:   NewExportService(storages.Entries, storages.ExportFiles, vault, locker, ids, cfg.Crypto, log),
		EntryVault:      vault,
		AutoLockJob:     NewAutoLockJob(sessions, log),
		Sessions:        sessions,
		Locker:          locker,
	}, nil
}

// Services is the envelope document server's service set.
type Services struct {
	EnvelopeDocumentService EnvelopeDocumentService
	AppInfoService          AppInfoService
}

func NewServices(storages *store.ServerStorages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	documents := NewEnvelopeDocumentValidationService().Wrap(NewEnvelopeDocumentService(storages.Envelopes, logger))

	return &Services{
		EnvelopeDocumentService: documents,
		AppInfoService:          appInfo,
	}, nil
}
