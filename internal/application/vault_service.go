package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// VaultCodeKey is the persisted key holding the hashed vault access code.
const VaultCodeKey = "vault_code"

type vaultCodeRecord struct {
	Hash string `json:"hash"`
}

// VaultService gates the document vault behind a local access code. The gate
// simulates the biometric prompt of the original portal; it makes no real
// authentication claim.
type VaultService struct {
	store     EnvelopeStore
	documents []VaultDocument
	logger    *slog.Logger
}

// NewVaultService wires dependencies for vault operations. A nil documents
// slice selects the default listing.
func NewVaultService(store EnvelopeStore, documents []VaultDocument, logger *slog.Logger) *VaultService {
	if documents == nil {
		documents = DefaultVaultDocuments()
	}
	return &VaultService{store: store, documents: documents, logger: defaultLogger(logger)}
}

// SetCode hashes and persists a new access code.
func (s *VaultService) SetCode(ctx context.Context, code string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("VaultService is not configured")
	}

	if strings.TrimSpace(code) == "" {
		vErr := &ValidationError{}
		vErr.add("code", "access code is required")
		return vErr
	}

	hash, err := HashAccessCode(code, DefaultArgon2idParams)
	if err != nil {
		return fmt.Errorf("failed to hash access code: %w", err)
	}

	if _, err := s.store.Put(ctx, VaultCodeKey, vaultCodeRecord{Hash: hash}); err != nil {
		serviceLogger(ctx, s.logger, "vault", "set_code").Error("failed to persist access code", "error", err, "kind", ErrorKind(err))
		return err
	}

	serviceLogger(ctx, s.logger, "vault", "set_code").Info("access code updated")
	return nil
}

// Unlock verifies the access code and returns the document listing. An
// unconfigured gate reports ErrAccessCodeNotSet; a rejected code reports
// ErrInvalidAccessCode.
func (s *VaultService) Unlock(ctx context.Context, code string) ([]VaultDocument, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("VaultService is not configured")
	}

	var record vaultCodeRecord
	ok, err := s.store.Get(ctx, VaultCodeKey, &record)
	if err != nil {
		return nil, err
	}
	if !ok || record.Hash == "" {
		return nil, ErrAccessCodeNotSet
	}

	if err := VerifyAccessCode(record.Hash, code); err != nil {
		serviceLogger(ctx, s.logger, "vault", "unlock").Warn("access rejected", "kind", ErrorKind(err))
		return nil, err
	}

	return append([]VaultDocument(nil), s.documents...), nil
}

// DefaultVaultDocuments returns the mock vault listing.
func DefaultVaultDocuments() []VaultDocument {
	return []VaultDocument{
		{Name: "Company charter.pdf", Updated: "yesterday"},
		{Name: "Business registry extract.pdf", Updated: "3 days ago"},
		{Name: "Lease agreement.pdf", Updated: "a week ago"},
	}
}
