package api

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "cardboard.v1.CardBoard"

const (
	MethodRegister                 = "Register"
	MethodLogin                    = "Login"
	MethodRefreshToken             = "RefreshToken"
	MethodPing                     = "Ping"
	MethodLookupUserID             = "LookupUserID"
	MethodLookupUserEmail          = "LookupUserEmail"
	MethodCreateCard               = "CreateCard"
	MethodUpdateCard               = "UpdateCard"
	MethodGetCard                  = "GetCard"
	MethodListCards                = "ListCards"
	MethodSetCardImage             = "SetCardImage"
	MethodRemoveCardImage          = "RemoveCardImage"
	MethodShareCard                = "ShareCard"
	MethodRemoveAccess             = "RemoveAccess"
	MethodRevokeShare              = "RevokeShare"
	MethodListShares               = "ListShares"
	MethodListNotifications        = "ListNotifications"
	MethodMarkNotificationRead     = "MarkNotificationRead"
	MethodMarkAllNotificationsRead = "MarkAllNotificationsRead"
	MethodDeleteNotification       = "DeleteNotification"
	MethodUnreadCount              = "UnreadCount"
	MethodGetProfile               = "GetProfile"
	MethodUpdateProfile            = "UpdateProfile"
	MethodUploadAvatar             = "UploadAvatar"
)

// FullMethod returns "/cardboard.v1.CardBoard/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// PublicMethods may be called without an access token.
var PublicMethods = map[string]bool{
	FullMethod(MethodRegister):     true,
	FullMethod(MethodLogin):        true,
	FullMethod(MethodRefreshToken): true,
	FullMethod(MethodPing):         true,
}

// CardBoardServer is implemented by the gRPC server.
type CardBoardServer interface {
	Register(context.Context, *Credentials) (*RegisterResponse, error)
	Login(context.Context, *Credentials) (*TokenResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error)
	Ping(context.Context, *Empty) (*PingResponse, error)
	LookupUserID(context.Context, *LookupUserIDRequest) (*LookupUserIDResponse, error)
	LookupUserEmail(context.Context, *LookupUserEmailRequest) (*LookupUserEmailResponse, error)

	CreateCard(context.Context, *CreateCardRequest) (*CardResponse, error)
	UpdateCard(context.Context, *UpdateCardRequest) (*CardResponse, error)
	GetCard(context.Context, *CardRequest) (*CardResponse, error)
	ListCards(context.Context, *Empty) (*ListCardsResponse, error)
	SetCardImage(context.Context, *SetCardImageRequest) (*CardResponse, error)
	RemoveCardImage(context.Context, *RemoveCardImageRequest) (*CardResponse, error)

	ShareCard(context.Context, *ShareCardRequest) (*ShareCardResponse, error)
	RemoveAccess(context.Context, *CardRequest) (*RemoveAccessResponse, error)
	RevokeShare(context.Context, *RevokeShareRequest) (*Empty, error)
	ListShares(context.Context, *CardRequest) (*ListSharesResponse, error)

	ListNotifications(context.Context, *Empty) (*ListNotificationsResponse, error)
	MarkNotificationRead(context.Context, *NotificationRequest) (*Empty, error)
	MarkAllNotificationsRead(context.Context, *Empty) (*MarkAllNotificationsReadResponse, error)
	DeleteNotification(context.Context, *NotificationRequest) (*Empty, error)
	UnreadCount(context.Context, *Empty) (*UnreadCountResponse, error)

	GetProfile(context.Context, *Empty) (*ProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*ProfileResponse, error)
	UploadAvatar(context.Context, *UploadAvatarRequest) (*ProfileResponse, error)
}

// unary builds a method descriptor that decodes Req and dispatches to call
// through the server's interceptor chain.
func unary[Req, Resp any](name string, call func(CardBoardServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CardBoardServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CardBoardServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes cardboard.v1.CardBoard for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CardBoardServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodRegister, CardBoardServer.Register),
		unary(MethodLogin, CardBoardServer.Login),
		unary(MethodRefreshToken, CardBoardServer.RefreshToken),
		unary(MethodPing, CardBoardServer.Ping),
		unary(MethodLookupUserID, CardBoardServer.LookupUserID),
		unary(MethodLookupUserEmail, CardBoardServer.LookupUserEmail),
		unary(MethodCreateCard, CardBoardServer.CreateCard),
		unary(MethodUpdateCard, CardBoardServer.UpdateCard),
		unary(MethodGetCard, CardBoardServer.GetCard),
		unary(MethodListCards, CardBoardServer.ListCards),
		unary(MethodSetCardImage, CardBoardServer.SetCardImage),
		unary(MethodRemoveCardImage, CardBoardServer.RemoveCardImage),
		unary(MethodShareCard, CardBoardServer.ShareCard),
		unary(MethodRemoveAccess, CardBoardServer.RemoveAccess),
		unary(MethodRevokeShare, CardBoardServer.RevokeShare),
		unary(MethodListShares, CardBoardServer.ListShares),
		unary(MethodListNotifications, CardBoardServer.ListNotifications),
		unary(MethodMarkNotificationRead, CardBoardServer.MarkNotificationRead),
		unary(MethodMarkAllNotificationsRead, CardBoardServer.MarkAllNotificationsRead),
		unary(MethodDeleteNotification, CardBoardServer.DeleteNotification),
		unary(MethodUnreadCount, CardBoardServer.UnreadCount),
		unary(MethodGetProfile, CardBoardServer.GetProfile),
		unary(MethodUpdateProfile, CardBoardServer.UpdateProfile),
		unary(MethodUploadAvatar, CardBoardServer.UploadAvatar),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cardboard/v1/cardboard.json",
}

func RegisterCardBoardServer(s grpc.ServiceRegistrar, srv CardBoardServer) {
	s.RegisterService(&ServiceDesc, srv)
}
