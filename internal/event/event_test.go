package event_test

import (
	"testing"

	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/event/mocks"
	"go.uber.org/mock/gomock"
)

func TestDispatchReachesTypedAndWildcardListeners(t *testing.T) {
	ctrl := gomock.NewController(t)

	typed := mocks.NewMockListener(ctrl)
	all := mocks.NewMockListener(ctrl)
	d := event.NewDispatcher()
	d.Subscribe(event.EnemyKilled, typed)
	d.SubscribeAll(all)

	kill := event.Event{Type: event.EnemyKilled, Data: event.KillData{Gold: 5}}
	typed.EXPECT().OnEvent(kill).Times(1)
	all.EXPECT().OnEvent(kill).Times(1)
	all.EXPECT().OnEvent(event.Event{Type: event.GameOver}).Times(1)

	d.Dispatch(kill)
	d.Emit(event.GameOver, nil)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)

	l := mocks.NewMockListener(ctrl)
	d := event.NewDispatcher()
	d.Subscribe(event.ComboBroken, l)
	d.Unsubscribe(event.ComboBroken, l)

	l.EXPECT().OnEvent(gomock.Any()).Times(0)
	d.Emit(event.ComboBroken, event.ComboData{Count: 7})
}

func TestNilDispatcherDropsEvents(t *testing.T) {
	var d *event.Dispatcher
	d.Emit(event.Victory, nil)
}
