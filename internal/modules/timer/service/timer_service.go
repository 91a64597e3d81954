package service

import (
	"time"

	"tempo/internal/modules/timer/domain"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/id"
)

// TimerService binds the pure transition functions to real time and
// fresh run ids.
type TimerService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewTimerService(clock clock.Clock, idGen id.Generator) *TimerService {
	return &TimerService{clock: clock, idGen: idGen}
}

func (s *TimerService) Start(run domain.Run) (domain.Run, error) {
	return domain.Start(run, s.clock.Now(), s.idGen.New())
}

func (s *TimerService) Pause(run domain.Run) (domain.Run, error) {
	return domain.Pause(run, s.clock.Now())
}

func (s *TimerService) Stop(run domain.Run) (domain.Run, error) {
	return domain.Stop(run, s.clock.Now())
}

func (s *TimerService) Elapsed(run domain.Run) int {
	return run.Elapsed(s.clock.Now())
}

// Now is the commit timestamp source: local wall-clock at save time.
func (s *TimerService) Now() time.Time {
	return s.clock.Now()
}
