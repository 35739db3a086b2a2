package testutils

import (
	"context"
	"net/http"
)

type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if m.DoFunc != nil {
		return m.DoFunc(req)
	}
	return nil, nil
}

// MockPathStore is an in-memory machine PATH. Every successful write is
// recorded in Writes.
type MockPathStore struct {
	Value    string
	ReadErr  error
	WriteErr error
	Reads    int
	Writes   []string
}

func (m *MockPathStore) ReadMachinePath() (string, error) {
	m.Reads++
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.Value, nil
}

func (m *MockPathStore) WriteMachinePath(value string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Value = value
	m.Writes = append(m.Writes, value)
	return nil
}

type MockElevator struct {
	Elevated      bool
	RerunErr      error
	RerunRequests int
}

func (m *MockElevator) IsElevated() bool {
	return m.Elevated
}

func (m *MockElevator) RequestElevatedRerun() error {
	m.RerunRequests++
	return m.RerunErr
}

type MockFetcher struct {
	DownloadFunc func(ctx context.Context, url, dest string) error
	URLs         []string
}

func (m *MockFetcher) Download(ctx context.Context, url, dest string) error {
	m.URLs = append(m.URLs, url)
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, url, dest)
	}
	return nil
}

// RunCall captures one process invocation.
type RunCall struct {
	Path string
	Args []string
}

type MockRunner struct {
	RunFunc    func(ctx context.Context, path string, args ...string) (int, error)
	OutputFunc func(ctx context.Context, path string, args ...string) ([]byte, error)
	Runs       []RunCall
	Outputs    []RunCall
}

func (m *MockRunner) Run(ctx context.Context, path string, args ...string) (int, error) {
	m.Runs = append(m.Runs, RunCall{Path: path, Args: args})
	if m.RunFunc != nil {
		return m.RunFunc(ctx, path, args...)
	}
	return 0, nil
}

func (m *MockRunner) Output(ctx context.Context, path string, args ...string) ([]byte, error) {
	m.Outputs = append(m.Outputs, RunCall{Path: path, Args: args})
	if m.OutputFunc != nil {
		return m.OutputFunc(ctx, path, args...)
	}
	return nil, nil
}
