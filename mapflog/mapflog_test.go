package mapflog_test

import (
	"bytes"
	"testing"

	"github.com/nimblegrid/mapfm/mapflog"
	"github.com/stretchr/testify/require"
)

func TestLogWritesTagMessageAndPairs(t *testing.T) {
	var buf bytes.Buffer
	l := mapflog.New(&buf)
	l.Log("idsolve.merge", "combined groups", "a", 1, "b", 2)
	require.Equal(t, "idsolve.merge: combined groups a=1 b=2\n", buf.String())
}

func TestLogOnNilLoggerIsNoop(t *testing.T) {
	require.NotPanics(t, func() {
		mapflog.Log(nil, "tag", "msg", "k", "v")
	})
}
