// Package grpc serves the cardboard.v1.CardBoard API on top of the domain
// services, together with the standard gRPC health service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/logging"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
	"github.com/dmitrijs2005/cardboard/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	LookupUserID(ctx context.Context, email string) (string, error)
	LookupUserEmail(ctx context.Context, userID string) (string, error)
}

type CardService interface {
	ImageURL(c *models.Card) string
	CreateCard(ctx context.Context, ownerID string, in services.CardInput) (*models.Card, error)
	GetCard(ctx context.Context, cardID, userID string) (*models.Card, error)
	ListCards(ctx context.Context, userID string) ([]*models.Card, error)
	UpdateCard(ctx context.Context, cardID, actorID string, in services.CardInput) (*models.Card, error)
	SetCardImage(ctx context.Context, cardID, actorID string, img *models.Image) (*models.Card, error)
	RemoveCardImage(ctx context.Context, cardID, actorID, iconName string) (*models.Card, error)
}

type ShareService interface {
	ShareCard(ctx context.Context, cardID, recipientEmail, actorID string) (*services.ShareResult, error)
	RemoveAccess(ctx context.Context, cardID, actorID string) (*services.RemoveAccessResult, error)
	ListShares(ctx context.Context, cardID, actorID string) ([]*models.Share, error)
	RevokeShare(ctx context.Context, cardID, recipientID, actorID string) error
}

type NotificationService interface {
	List(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, actorID string) error
	MarkAllRead(ctx context.Context, actorID string) (int64, error)
	Delete(ctx context.Context, id, actorID string) error
	UnreadCount(ctx context.Context, actorID string) (int64, error)
}

type ProfileService interface {
	AvatarURL(p *models.Profile) string
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID, firstName, lastName, phone string) (*models.Profile, error)
	UploadAvatar(ctx context.Context, userID string, img *models.Image) (*models.Profile, error)
}

// Services groups the dependencies of GRPCServer.
type Services struct {
	Users         UserService
	Cards         CardService
	Shares        ShareService
	Notifications NotificationService
	Profiles      ProfileService
}

type GRPCServer struct {
	address       string
	users         UserService
	cards         CardService
	shares        ShareService
	notifications NotificationService
	profiles      ProfileService
	logger        logging.Logger
	jwtSecret     []byte
	health        *health.Server
}

var _ api.CardBoardServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		users:         svc.Users,
		cards:         svc.Cards,
		shares:        svc.Shares,
		notifications: svc.Notifications,
		profiles:      svc.Profiles,
		jwtSecret:     []byte(secretKey),
		health:        health.NewServer(),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)

	api.RegisterCardBoardServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
