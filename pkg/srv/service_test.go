package srv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name     string
	startErr error
	events   *[]string
}

func (r *recorder) Start(ctx context.Context) error {
	*r.events = append(*r.events, "start:"+r.name)
	return r.startErr
}

func (r *recorder) Shutdown(ctx context.Context) error {
	*r.events = append(*r.events, "stop:"+r.name)
	return nil
}

func TestRun_StartsInOrderAndStopsInReverse(t *testing.T) {
	var events []string
	services := []Service{
		&recorder{name: "a", events: &events},
		&recorder{name: "b", events: &events},
	}

	err := Run(context.Background(), services)

	assert.NoError(t, err)
	assert.Equal(t, []string{"start:a", "start:b", "stop:b", "stop:a"}, events)
}

func TestRun_StopsAfterStartFailure(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	services := []Service{
		&recorder{name: "a", events: &events},
		&recorder{name: "b", events: &events, startErr: boom},
		&recorder{name: "c", events: &events},
	}

	err := Run(context.Background(), services)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start:a", "start:b", "stop:a"}, events)
}
