package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	tomb "gopkg.in/tomb.v2"

	"github.com/saiputravu/portman/internal/config"
	"github.com/saiputravu/portman/internal/eventbus"
	"github.com/saiputravu/portman/internal/handler"
	"github.com/saiputravu/portman/internal/registry"
	"github.com/saiputravu/portman/internal/rpc"
	_ "github.com/saiputravu/portman/internal/rpcjson"
	"github.com/saiputravu/portman/internal/tradesink"
	"github.com/saiputravu/portman/internal/wpool"
)

const maxConcurrentFlushes = 16

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	sink, err := tradesink.Open(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to open trade sink")
	}
	defer sink.Close()

	pub, err := eventbus.Connect(cfg.NATSURL)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to message bus")
	}
	defer pub.Close()

	t, ctx := tomb.WithContext(ctx)

	reg := registry.New()
	pool := wpool.New(maxConcurrentFlushes)
	h := handler.New(reg, sink, pub, pool, t)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(rpc.RecoveryInterceptor))
	rpc.RegisterOrdersServiceServer(grpcServer, rpc.NewServer(h))

	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Addr()).Msg("unable to start listener")
	}

	t.Go(func() error {
		log.Info().Str("addr", cfg.Addr()).Msg("orders service listening")
		return grpcServer.Serve(listener)
	})

	t.Go(func() error {
		<-t.Dying()
		grpcServer.GracefulStop()
		return nil
	})

	<-ctx.Done()
	t.Kill(nil)
	if err := t.Wait(); err != nil {
		log.Error().Err(err).Msg("server exited with error")
	}
}
