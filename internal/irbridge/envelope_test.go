package irbridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edgeflow/irdecode/pkg/irdecode"
)

func TestFromCmdUnion_Nec(t *testing.T) {
	now := time.Now()
	u := irdecode.FromNec(irdecode.NecCommand{Address: 0x01, Command: 0x02, Repeat: true})

	env, ok := FromCmdUnion(17, u, now)
	assert.True(t, ok)
	assert.Equal(t, "nec", env.Protocol)
	assert.Equal(t, uint32(0x01), env.Address)
	assert.Equal(t, uint32(0x02), env.Command)
	assert.True(t, env.Repeat)
	assert.Equal(t, 17, env.Pin)
	assert.NotEmpty(t, env.ID)
}

func TestFromCmdUnion_Rc5HasNoRepeatFlag(t *testing.T) {
	u := irdecode.FromRc5(irdecode.Rc5Command{Address: 0x05, Command: 0x10, Toggle: true})

	env, ok := FromCmdUnion(4, u, time.Now())
	assert.True(t, ok)
	assert.Equal(t, "rc5", env.Protocol)
	assert.False(t, env.Repeat)
}

func TestFromCmdUnion_NoneKindIsRejected(t *testing.T) {
	_, ok := FromCmdUnion(0, irdecode.CmdUnion{}, time.Now())
	assert.False(t, ok)
}

func TestStats_SnapshotResetsCounters(t *testing.T) {
	s := NewStats()
	s.RecordDecoded("nec")
	s.RecordDecoded("nec")
	s.RecordError("nec")
	s.RecordDecoded("rc5")

	snap := s.snapshot()
	assert.Equal(t, int64(2), snap["nec"].decoded)
	assert.Equal(t, int64(1), snap["nec"].errors)
	assert.Equal(t, int64(1), snap["rc5"].decoded)

	second := s.snapshot()
	assert.Equal(t, int64(0), second["nec"].decoded)
}
