package entity

import (
	"context"

	"github.com/freelancedao/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&ActionRecord{},
	)
}
