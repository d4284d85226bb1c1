package actions

import (
	"context"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
