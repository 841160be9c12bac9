package usecase

import (
	"yatri-auth/internal/data/repository"
	"yatri-auth/pkg/mailer"
	"yatri-auth/pkg/token"
	"yatri-auth/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
}

func NewService(
	repo *repository.Repository,
	sender mailer.Sender,
	issuer *token.Issuer,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth: NewAuthService(repo, sender, issuer, config, log),
	}
}
