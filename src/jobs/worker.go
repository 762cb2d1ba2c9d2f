package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RegisterHandlers ผูก handler ทั้งหมดของการแจ้งเตือนการลงทะเบียนเข้ากับ mux
func RegisterHandlers(mux *asynq.ServeMux, log *zap.Logger) {
	mux.HandleFunc(TypeSignedUp, HandleSignedUp(log))
	mux.HandleFunc(TypeUnregistered, HandleUnregistered(log))
}

func decodePayload(t *asynq.Task) (EnrollmentPayload, error) {
	var p EnrollmentPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// payload เสีย retry ไปก็ไม่หาย
		return p, fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	p.Normalize()
	if p.Activity == "" || p.Email == "" {
		return p, fmt.Errorf("%s payload missing activity or email: %w", t.Type(), asynq.SkipRetry)
	}
	return p, nil
}

func HandleSignedUp(log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		p, err := decodePayload(t)
		if err != nil {
			log.Error("drop signup notification", zap.Error(err))
			return err
		}
		log.Info("signup confirmed",
			zap.String("activity", p.Activity),
			zap.String("email", p.Email),
		)
		return nil
	}
}

func HandleUnregistered(log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		p, err := decodePayload(t)
		if err != nil {
			log.Error("drop unregister notification", zap.Error(err))
			return err
		}
		log.Info("unregistration confirmed",
			zap.String("activity", p.Activity),
			zap.String("email", p.Email),
		)
		return nil
	}
}
