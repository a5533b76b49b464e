package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDoctors(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"doctors", "--config", ""}, args...))
	require.NoError(t, cmd.Execute())

	return out.String()
}

func TestDoctorsCmd_Search(t *testing.T) {
	out := runDoctors(t, "cardio")

	assert.Contains(t, out, "Dr. Sarah Johnson")
	assert.NotContains(t, out, "Dr. Michael Chen")
	assert.Contains(t, out, "1 doctor(s) found")
}

func TestDoctorsCmd_AllDoctors(t *testing.T) {
	out := runDoctors(t)

	assert.Contains(t, out, "6 doctor(s) found")
}

func TestDoctorsCmd_TooManyArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"doctors", "a", "b", "--config", ""})

	assert.Error(t, cmd.Execute())
}
