package router

import (
	"context"
	"strings"

	"github.com/nidhogg/concept-lab/internal/command"
	"github.com/nidhogg/concept-lab/internal/dialogue"
	"github.com/nidhogg/concept-lab/internal/gateway"
	"github.com/nidhogg/concept-lab/internal/service"
	"go.uber.org/zap"
)

// Sender delivers a reply to a platform channel. *gateway.Gateway
// satisfies it.
type Sender interface {
	Send(ctx context.Context, msg *gateway.OutboundMessage) error
}

// MessageRouter sends slash commands to the command registry and all other
// text to the caller's guided dialogue.
type MessageRouter struct {
	sender    Sender
	svc       *service.ExplanationService
	dialogues *dialogue.Manager
	commands  *command.Registry
	logger    *zap.Logger
}

// New creates a new MessageRouter.
func New(sender Sender, svc *service.ExplanationService, dialogues *dialogue.Manager,
	commands *command.Registry, logger *zap.Logger) *MessageRouter {
	return &MessageRouter{
		sender:    sender,
		svc:       svc,
		dialogues: dialogues,
		commands:  commands,
		logger:    logger,
	}
}

// Handle routes an inbound message. Signature matches gateway.MessageHandler.
func (mr *MessageRouter) Handle(msg *gateway.InboundMessage) {
	ctx := context.Background()
	mr.logger.Info("routing message",
		zap.String("platform", msg.Platform),
		zap.String("channel", msg.ChannelID),
		zap.String("user", msg.UserName),
	)

	content := strings.TrimSpace(msg.Content)

	if strings.HasPrefix(content, "/") {
		cc := &command.CommandContext{
			Platform:   msg.Platform,
			ChannelID:  msg.ChannelID,
			UserID:     msg.UserID,
			UserName:   msg.UserName,
			SessionKey: msg.SessionKey(),
			Service:    mr.svc,
			Dialogues:  mr.dialogues,
		}
		result, err := mr.commands.Dispatch(ctx, content, cc)
		if err != nil {
			mr.logger.Error("command dispatch error", zap.Error(err))
			mr.sendReply(ctx, msg, "Command error: "+err.Error())
			return
		}
		mr.sendReply(ctx, msg, result.Content)
		return
	}

	reply := mr.dialogues.Handle(ctx, msg.SessionKey(), content)
	mr.sendReply(ctx, msg, strings.TrimSpace(reply))
}

// sendReply sends a text reply back to the originating platform/channel.
func (mr *MessageRouter) sendReply(ctx context.Context, orig *gateway.InboundMessage, text string) {
	err := mr.sender.Send(ctx, &gateway.OutboundMessage{
		Platform:  orig.Platform,
		ChannelID: orig.ChannelID,
		Content:   text,
		ReplyTo:   orig.ReplyTo,
	})
	if err != nil {
		mr.logger.Error("send reply failed", zap.Error(err))
	}
}
