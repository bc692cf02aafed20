package memory

import (
	"context"

	"github.com/Wyydra/callstate/internal/core/domain"
)

func (e *CallEngine) StartCaptions(ctx context.Context, language string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpStartCaptions); err != nil {
		return err
	}
	if !e.status.IsActive() {
		return domain.CaptionsStartFailedCallNotConnected
	}
	e.captionsOn = true
	e.emitLocked(ctx, domain.CaptionsActiveChanged{Active: true})
	return nil
}

func (e *CallEngine) StopCaptions(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpStopCaptions); err != nil {
		return err
	}
	if !e.captionsOn {
		return domain.CaptionsNotActive
	}
	e.captionsOn = false
	e.emitLocked(ctx, domain.CaptionsActiveChanged{Active: false})
	return nil
}

func (e *CallEngine) SetSpokenLanguage(ctx context.Context, language string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpSpokenLanguage); err != nil {
		return err
	}
	if !e.captionsOn {
		return domain.CaptionsNotActive
	}
	return nil
}

func (e *CallEngine) SetCaptionLanguage(ctx context.Context, language string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.begin(ctx, OpCaptionLanguage); err != nil {
		return err
	}
	if !e.captionsOn {
		return domain.CaptionsNotActive
	}
	return nil
}
