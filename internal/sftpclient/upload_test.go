package sftpclient

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/sftp"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{Host: "test-host", User: "test-user", Pass: "test-pass"}.withDefaults()

	if cfg.Port != 22 {
		t.Errorf("Expected default Port to be 22, got %d", cfg.Port)
	}
	if cfg.RemoteDir != "/" {
		t.Errorf("Expected default RemoteDir to be '/', got %q", cfg.RemoteDir)
	}

	cfg = Config{Port: 2222, RemoteDir: "/in"}.withDefaults()
	if cfg.Port != 2222 || cfg.RemoteDir != "/in" {
		t.Errorf("Expected explicit values to be kept, got %+v", cfg)
	}
}

func TestHostKeyCallback(t *testing.T) {
	if _, err := hostKeyCallback(Config{InsecureIgnoreHostKey: true}); err != nil {
		t.Errorf("Expected no error in insecure mode, got %v", err)
	}

	if _, err := hostKeyCallback(Config{}); err == nil {
		t.Error("Expected error when known_hosts is missing")
	}

	if _, err := hostKeyCallback(Config{KnownHostsPath: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("Expected error for unreadable known_hosts")
	}

	kh := filepath.Join(t.TempDir(), "known_hosts")
	if err := os.WriteFile(kh, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := hostKeyCallback(Config{KnownHostsPath: kh}); err != nil {
		t.Errorf("Expected empty known_hosts to load, got %v", err)
	}
}

func TestUploadFileValidation(t *testing.T) {
	ctx := context.Background()

	const (
		testHost = "127.0.0.1"
		testUser = "test-user"
		testPass = "test-pass"
		testFile = "test.txt"
	)

	testCases := []struct {
		name          string
		cfg           Config
		errorContains string
	}{
		{
			name:          "Missing credentials",
			cfg:           Config{},
			errorContains: "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS",
		},
		{
			name:          "Host key checking without known_hosts",
			cfg:           Config{Host: testHost, User: testUser, Pass: testPass},
			errorContains: "SFTP_KNOWN_HOSTS",
		},
		{
			name: "Nothing listening",
			cfg: Config{
				Host:                  testHost,
				Port:                  1,
				User:                  testUser,
				Pass:                  testPass,
				InsecureIgnoreHostKey: true,
			},
			errorContains: "sftp: dial error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := UploadFile(ctx, tc.cfg, testFile, testFile)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.errorContains) {
				t.Errorf("Expected error to contain %q, got %q", tc.errorContains, err.Error())
			}
		})
	}
}

type pipeConn struct {
	io.Reader
	io.WriteCloser
}

// newPipeClient runs an in-process SFTP server over pipes.
func newPipeClient(t *testing.T) *sftp.Client {
	t.Helper()

	clientRead, serverWrite := io.Pipe()
	serverRead, clientWrite := io.Pipe()

	server, err := sftp.NewServer(pipeConn{serverRead, serverWrite})
	if err != nil {
		t.Fatalf("sftp.NewServer() error = %v", err)
	}
	go func() { _ = server.Serve() }()

	client, err := sftp.NewClientPipe(clientRead, clientWrite)
	if err != nil {
		t.Fatalf("sftp.NewClientPipe() error = %v", err)
	}
	// closing the client ends Serve with EOF
	t.Cleanup(func() { client.Close() })
	return client
}

func TestUploadOverPipe(t *testing.T) {
	client := newPipeClient(t)

	local := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(local, []byte("IMDB_ID,TITLE\r\ntt1,Alien\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	remoteDir := filepath.Join(t.TempDir(), "inbound", "omdb")

	if err := upload(client, remoteDir, local, "results.csv"); err != nil {
		t.Fatalf("upload() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(remoteDir, "results.csv"))
	if err != nil {
		t.Fatalf("Expected remote file, got %v", err)
	}
	if string(got) != "IMDB_ID,TITLE\r\ntt1,Alien\r\n" {
		t.Errorf("Unexpected remote content %q", string(got))
	}
}

func TestUploadMissingLocalFile(t *testing.T) {
	client := newPipeClient(t)

	err := upload(client, t.TempDir(), filepath.Join(t.TempDir(), "missing.csv"), "missing.csv")
	if err == nil || !strings.Contains(err.Error(), "open local file") {
		t.Errorf("Expected open local file error, got %v", err)
	}
}
