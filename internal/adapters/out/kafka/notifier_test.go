package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type writerMock struct {
	mock.Mock
}

func (m *writerMock) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

type NotifierSuite struct {
	suite.Suite
	wm *writerMock
	n  *Notifier
	tr kernel.Transition
}

func (s *NotifierSuite) SetupTest() {
	s.wm = &writerMock{}
	s.n = newNotifierWithWriter(s.wm, "transitions", zerolog.Nop())
	s.tr = kernel.Transition{
		Entity:    kernel.EntityRoute,
		ID:        kernel.NewUUID(),
		CompanyID: kernel.NewUUID(),
		ActorID:   kernel.NewUUID(),
		From:      "InProgress",
		To:        "Completed",
		At:        time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
		Cascade:   true,
	}
}

func (s *NotifierSuite) TestNewNotifier_NotNil() {
	s.Require().NotNil(NewNotifier([]string{"localhost:0"}, "t", zerolog.Nop()))
}

func (s *NotifierSuite) TestNotify_WritesKeyedEvent() {
	var got []kafka.Message
	s.wm.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).([]kafka.Message) }).
		Return(nil).
		Once()

	s.Require().NoError(s.n.Notify(context.Background(), s.tr))
	s.wm.AssertExpectations(s.T())

	s.Require().Len(got, 1)
	s.Equal("transitions", got[0].Topic)
	s.Equal(s.tr.ID.String(), string(got[0].Key))

	var ev TransitionEvent
	s.Require().NoError(json.Unmarshal(got[0].Value, &ev))
	s.Equal(kernel.EntityRoute, ev.Entity)
	s.True(ev.ID.IsEqual(s.tr.ID))
	s.Equal("InProgress", ev.From)
	s.Equal("Completed", ev.To)
	s.True(ev.Cascade)
	s.True(ev.At.Equal(s.tr.At))
}

func (s *NotifierSuite) TestNotify_ErrorWrapped() {
	s.wm.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	err := s.n.Notify(context.Background(), s.tr)
	s.Require().Error(err)
	s.Contains(err.Error(), "kafka publish route transition")
	s.Contains(err.Error(), "boom")
}

func (s *NotifierSuite) TestClose_WithoutCloser() {
	s.NoError(s.n.Close())
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierSuite))
}
