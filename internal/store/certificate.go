package store

import (
	"context"
	"fmt"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/certificate"
	"github.com/adilet/learnloop/internal/model"
)

// CertificateRepo manages issued certificates.
type CertificateRepo struct {
	client *ent.Client
}

// Insert persists a certificate. ErrConflict on a code collision.
func (r *CertificateRepo) Insert(ctx context.Context, c model.Certificate) (*model.Certificate, error) {
	row, err := r.client.Certificate.Create().
		SetUserID(c.UserID).
		SetExamID(c.ExamID).
		SetCode(c.Code).
		Save(ctx)
	if err != nil {
		return nil, mapWriteError("insert certificate", err)
	}
	return entCertToModel(row), nil
}

// ByUser returns all certificates issued to a learner.
func (r *CertificateRepo) ByUser(ctx context.Context, userID string) ([]model.Certificate, error) {
	rows, err := r.client.Certificate.Query().
		Where(certificate.UserIDEQ(userID)).
		Order(ent.Desc(certificate.FieldIssuedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query certificates by user: %w", err)
	}

	out := make([]model.Certificate, len(rows))
	for i, row := range rows {
		out[i] = *entCertToModel(row)
	}
	return out, nil
}

// ByCode looks up a certificate by its public verification code, or
// returns ErrNotFound.
func (r *CertificateRepo) ByCode(ctx context.Context, code string) (*model.Certificate, error) {
	row, err := r.client.Certificate.Query().
		Where(certificate.CodeEQ(code)).
		Only(ctx)
	if err != nil {
		return nil, mapWriteError("get certificate by code", err)
	}
	return entCertToModel(row), nil
}

func entCertToModel(row *ent.Certificate) *model.Certificate {
	return &model.Certificate{
		ID:       row.ID,
		UserID:   row.UserID,
		ExamID:   row.ExamID,
		Code:     row.Code,
		IssuedAt: row.IssuedAt,
	}
}
