package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/ghbackup/pkg/domain/model"
)

type UseCase interface {
	BackupRepositories(ctx context.Context, input *model.BackupInput) (*model.BackupResult, error)
}
