// Where: internal/infra/host/docker.go
// What: Processor that runs the host inside a container.
// Why: Machines without a local Fiji install can still run the batch tracker.
package host

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/optofluidics/ofbatch/internal/infra/config"
	"github.com/optofluidics/ofbatch/internal/meta"
	"github.com/optofluidics/ofbatch/internal/usecase/batch"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

const (
	ManagedLabel = "com." + meta.Slug + ".managed"
	FolderLabel  = "com." + meta.Slug + ".folder"
)

var (
	getuid = os.Getuid
	getgid = os.Getgid
)

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	ContainerCreate(
		ctx context.Context,
		cfg *container.Config,
		hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig,
		platform *ocispec.Platform,
		containerName string,
	) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerWait(
		ctx context.Context,
		containerID string,
		condition container.WaitCondition,
	) (<-chan container.WaitResponse, <-chan error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
}

// DockerProcessor invokes the plugin through a containerized host.
// Paths are bind-mounted at identical locations and the container starts in
// Dir, so the argument string needs no path rewriting.
type DockerProcessor struct {
	Client   DockerClient
	Settings config.Settings
	Dir      string
	Paths    []string
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *log.Logger
}

// NewDockerProcessor creates a DockerProcessor mounting dir and paths.
func NewDockerProcessor(
	client DockerClient,
	settings config.Settings,
	dir string,
	paths []string,
	logger *log.Logger,
) DockerProcessor {
	return DockerProcessor{
		Client:   client,
		Settings: settings,
		Dir:      dir,
		Paths:    paths,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Logger:   logger,
	}
}

// Command returns the host command line executed inside the container.
func (p DockerProcessor) Command(argument string) ([]string, error) {
	hostPath := strings.TrimSpace(p.Settings.Host)
	if hostPath == "" {
		return nil, errHostRequired
	}
	args, err := RenderArgs(p.Settings.Args, InvocationData{Plugin: p.Settings.Plugin, Argument: argument})
	if err != nil {
		return nil, err
	}
	return append([]string{hostPath}, args...), nil
}

// Invoke runs the host container and blocks until it exits.
func (p DockerProcessor) Invoke(ctx context.Context, argument string) error {
	if p.Client == nil {
		return errDockerClientNil
	}
	ref := strings.TrimSpace(p.Settings.Image)
	if ref == "" {
		return errImageRequired
	}
	command, err := p.Command(argument)
	if err != nil {
		return err
	}
	logger := loggerOrDiscard(p.Logger)

	if err := p.ensureImage(ctx, ref, logger); err != nil {
		return &batch.ExternalInvocationError{Err: err}
	}

	mounts, err := bindMounts(p.Dir, append([]string{p.Dir}, p.Paths...))
	if err != nil {
		return err
	}

	cfg := &container.Config{
		Image:      ref,
		Cmd:        command,
		WorkingDir: p.Dir,
		User:       containerUser(),
		Labels: map[string]string{
			ManagedLabel: "true",
			FolderLabel:  strings.Join(p.Paths, ","),
		},
	}
	hostCfg := &container.HostConfig{Mounts: mounts}

	logger.Debug("creating host container", "image", ref, "command", command, "mounts", len(mounts))
	created, err := p.Client.ContainerCreate(ctx, cfg, hostCfg, nil, nil, "")
	if err != nil {
		return &batch.ExternalInvocationError{Err: fmt.Errorf("create container: %w", err)}
	}
	defer func() {
		if err := p.Client.ContainerRemove(context.Background(), created.ID, container.RemoveOptions{Force: true}); err != nil {
			logger.Warn("failed to remove host container", "id", created.ID, "err", err)
		}
	}()

	if err := p.Client.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return &batch.ExternalInvocationError{Err: fmt.Errorf("start container: %w", err)}
	}

	if err := p.streamLogs(ctx, created.ID); err != nil {
		logger.Warn("log stream interrupted", "id", created.ID, "err", err)
	}

	return p.wait(ctx, created.ID)
}

func (p DockerProcessor) ensureImage(ctx context.Context, ref string, logger *log.Logger) error {
	images, err := p.Client.ImageList(ctx, image.ListOptions{
		Filters: filters.NewArgs(filters.Arg("reference", ref)),
	})
	if err != nil {
		return fmt.Errorf("list images: %w", err)
	}
	if len(images) > 0 {
		return nil
	}

	logger.Info("pulling host image", "image", ref)
	reader, err := p.Client.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("pull image %s: %w", ref, err)
	}
	defer reader.Close()
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return fmt.Errorf("pull image %s: %w", ref, err)
	}
	return nil
}

func (p DockerProcessor) streamLogs(ctx context.Context, id string) error {
	reader, err := p.Client.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		return fmt.Errorf("container logs: %w", err)
	}
	defer reader.Close()

	stdout, stderr := p.Stdout, p.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	if _, err := stdcopy.StdCopy(stdout, stderr, reader); err != nil {
		return fmt.Errorf("copy container logs: %w", err)
	}
	return nil
}

func (p DockerProcessor) wait(ctx context.Context, id string) error {
	statusCh, errCh := p.Client.ContainerWait(ctx, id, container.WaitConditionNotRunning)
	for {
		select {
		case <-ctx.Done():
			return &batch.ExternalInvocationError{Err: fmt.Errorf("wait container: %w", ctx.Err())}
		case err := <-errCh:
			// A nil error carries no outcome; the status channel still decides.
			if err == nil {
				errCh = nil
				continue
			}
			return &batch.ExternalInvocationError{Err: fmt.Errorf("wait container: %w", err)}
		case status, ok := <-statusCh:
			if !ok {
				return &batch.ExternalInvocationError{Err: errWaitClosed}
			}
			if status.Error != nil && status.Error.Message != "" {
				return &batch.ExternalInvocationError{Err: fmt.Errorf("wait container: %s", status.Error.Message)}
			}
			if status.StatusCode != 0 {
				return &batch.ExternalInvocationError{
					Err:      fmt.Errorf("host container exited with status %d", status.StatusCode),
					ExitCode: int(status.StatusCode),
				}
			}
			return nil
		}
	}
}

// bindMounts converts paths to absolute bind mounts at identical targets,
// dropping duplicates and paths nested under another mounted path.
// Relative paths are resolved against dir.
func bindMounts(dir string, paths []string) ([]mount.Mount, error) {
	absolute := make([]string, 0, len(paths))
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve mount path %s: %w", path, err)
		}
		absolute = append(absolute, filepath.Clean(abs))
	}
	sort.Strings(absolute)

	mounts := make([]mount.Mount, 0, len(absolute))
	var kept []string
	for _, path := range absolute {
		if coveredBy(path, kept) {
			continue
		}
		kept = append(kept, path)
		mounts = append(mounts, mount.Mount{Type: mount.TypeBind, Source: path, Target: path})
	}
	return mounts, nil
}

func coveredBy(path string, parents []string) bool {
	for _, parent := range parents {
		if path == parent {
			return true
		}
		rel, err := filepath.Rel(parent, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func containerUser() string {
	uid, gid := getuid(), getgid()
	if uid < 0 || gid < 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", uid, gid)
}
