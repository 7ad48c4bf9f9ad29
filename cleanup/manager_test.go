package cleanup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/crafted-tech/logonapp/cleanup"
	"github.com/crafted-tech/logonapp/cleanup/mocks"
	"github.com/crafted-tech/logonapp/installer"
)

func namedStrategy(ctrl *gomock.Controller, name string) *mocks.MockStrategy {
	s := mocks.NewMockStrategy(ctrl)
	s.EXPECT().Name().Return(name).AnyTimes()
	return s
}

func newStrategy(ctrl *gomock.Controller, name string, result bool) *mocks.MockStrategy {
	s := namedStrategy(ctrl, name)
	s.EXPECT().Execute(gomock.Any()).Return(result).Times(1)
	return s
}

func TestManagerRunsEveryStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := installer.Discard()

	a := namedStrategy(ctrl, "A")
	b := namedStrategy(ctrl, "B")
	c := namedStrategy(ctrl, "C")
	gomock.InOrder(
		a.EXPECT().Execute(log).Return(true),
		b.EXPECT().Execute(log).Return(false),
		c.EXPECT().Execute(log).Return(true),
	)

	m := cleanup.NewManager(log)
	m.Add(a)
	m.Add(b)
	m.Add(c)
	m.Add(nil)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"A", "B", "C"}, m.Names())
	assert.False(t, m.ExecuteAll())

	assert.Equal(t, []string{
		"[INFO]: Executing cleanup strategy: A",
		"[INFO]: Executing cleanup strategy: B",
		"[WARNING] Strategy B reported issues.",
		"[INFO]: Executing cleanup strategy: C",
	}, log.Lines())
}

func TestManagerAllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := cleanup.NewManager(installer.Discard())
	m.Add(newStrategy(ctrl, "A", true))
	m.Add(newStrategy(ctrl, "B", true))

	assert.True(t, m.ExecuteAll())
}

func TestEmptyManagerSucceeds(t *testing.T) {
	assert.True(t, cleanup.NewManager(nil).ExecuteAll())
}
