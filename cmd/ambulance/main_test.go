// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestRun_InvalidLocation(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), nil, strings.NewReader("Downtown\nMain Hospital\n"), &out, &errOut, env(nil))

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Available locations:")
	assert.Contains(t, out.String(), "Invalid location entered")
	assert.NotContains(t, out.String(), "Starting live simulation")
}

func TestRun_OneCycle(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-cycles", "1", "-metrics"},
		strings.NewReader("city center\r\nresidential area\n"), &out, &errOut,
		env(map[string]string{"AMBULANCE_SEED": "3", "AMBULANCE_INTERVAL": "1ms"}))

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "City Center -> Mall -> Residential Area")
	assert.Contains(t, out.String(), "Estimated time: 20 minutes")
	assert.Contains(t, errOut.String(), "ambroute_cycles_total 1")
}

func TestRun_TwoCyclesPerturbs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-cycles", "2"},
		strings.NewReader("Mall\nTech Park\n"), &out, &errOut,
		env(map[string]string{"AMBULANCE_INTERVAL": "1ms"}))

	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, 2, strings.Count(out.String(), "Best route from Mall to Tech Park"))
	assert.Equal(t, 1, strings.Count(out.String(), "Updating traffic in"))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errOut bytes.Buffer
	code := run(ctx, nil, strings.NewReader("Mall\nAirport\n"), &out, &errOut, env(nil))
	assert.Equal(t, 0, code)
}

func TestRun_PrintConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-print-config"}, strings.NewReader(""), &out, &errOut, env(nil))
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "interval: 5s")
	assert.Contains(t, out.String(), "Residential Area")
}

func TestRun_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("traffic: {floor: 0}\n"), 0o600))

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-config", path}, strings.NewReader(""), &out, &errOut, env(nil))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "floor")
}

func TestRun_BadFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), []string{"-nope"}, strings.NewReader(""), &out, &errOut, env(nil)))
	assert.Equal(t, 2, run(context.Background(), []string{"-cycles", "-1"}, strings.NewReader(""), &out, &errOut, env(nil)))
}
