// filepath: internal/services/info_service.go
package services

import (
	"time"

	"dentahub/internal/models"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type infoService struct {
	startedAt time.Time
}

var _ InfoService = (*infoService)(nil)

// NewInfoService creates a new InfoService.
func NewInfoService() InfoService {
	return &infoService{startedAt: time.Now()}
}

func (s *infoService) GetInfo() models.Info {
	return models.Info{
		ServiceName: "dentahub",
		Version:     Version,
		UptimeSince: s.startedAt,
	}
}
