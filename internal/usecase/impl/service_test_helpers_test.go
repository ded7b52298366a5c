package impl

import (
	"io"
	"log/slog"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newIdentity(role entity.Role) *entity.Identity {
	return &entity.Identity{Subject: uuid.New(), Role: role}
}
