package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zsiec/prismclient/internal/client"
	"github.com/zsiec/prismclient/internal/config"
	"github.com/zsiec/prismclient/internal/decoder"
	"github.com/zsiec/prismclient/internal/inputfwd"
	"github.com/zsiec/prismclient/internal/protocol"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	log.Info("connecting", "addr", cfg.Addr)
	transport, err := client.DialTransport(cfg.Addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.Addr, err)
	}
	defer transport.Close()

	compositor, err := client.NewNullCompositor()
	if err != nil {
		return fmt.Errorf("compositor: %w", err)
	}
	defer compositor.Close()

	session := decoder.NewSession(decoder.NullAccelerator{})
	defer session.Close()
	video := client.NewVideoPipe(session, compositor)

	audio := client.NewAudioPipe(cfg.AudioRingSamples*4, log.With("component", "audio")) // stereo S16LE frames

	var demuxOpts []protocol.Option
	var stats *protocol.Stats
	if cfg.Stats {
		stats = &protocol.Stats{}
		demuxOpts = append(demuxOpts, protocol.WithStats(stats))
	}
	demux := protocol.NewDemuxer(video, audio, log.With("component", "demuxer"), demuxOpts...)

	var forwarder *inputfwd.Forwarder
	var inputCompositor client.Compositor
	if !cfg.NoInput {
		forwarder, err = inputfwd.New(inputfwd.NullSink{})
		if err != nil {
			return fmt.Errorf("input forwarder: %w", err)
		}
		defer forwarder.Close()
		inputCompositor = compositor
	}

	loop := client.NewLoop(transport, demux, inputCompositor, forwarder, log.With("component", "loop"))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("event loop: %w", err)
	}
	return nil
}
