package usecase

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ledger/base/amount"
	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/ledger"
)

type DiscordNotifierCfg struct {
	BotKey    string
	ChannelId string
	// TokenUrl is a format string taking the token id, e.g. https://x.xyz/tokens/%d
	TokenUrl string
}

// EmbedSender is the part of *discordgo.Session the notifier needs
type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordNotifier struct {
	cfg     DiscordNotifierCfg
	discord EmbedSender
}

func NewDiscordNotifier(cfg DiscordNotifierCfg) (ledger.Subscriber, error) {
	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, xerrors.Errorf("discordgo.New failed: %w", err)
	}
	return newDiscordNotifier(cfg, session), nil
}

func newDiscordNotifier(cfg DiscordNotifierCfg, sender EmbedSender) *discordNotifier {
	return &discordNotifier{cfg: cfg, discord: sender}
}

func (n *discordNotifier) Name() string {
	return "discord"
}

func (n *discordNotifier) Handle(c ctx.Ctx, e *ledger.Event) error {
	var msg *discordgo.MessageEmbed
	switch e.Type {
	case ledger.EventTypeSale:
		msg = n.saleEmbed(e)
	case ledger.EventTypeResultAuction:
		msg = n.auctionEmbed(e)
	default:
		return nil
	}

	if _, err := n.discord.ChannelMessageSendEmbed(n.cfg.ChannelId, msg); err != nil {
		c.WithField("err", err).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

func (n *discordNotifier) saleEmbed(e *ledger.Event) *discordgo.MessageEmbed {
	title := "Item sold!"
	if e.AuctionId != 0 {
		title = "Item sold at auction!"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: n.tokenUrl(e.TokenId),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Token", Value: strconv.FormatUint(uint64(e.TokenId), 10)},
			{Name: "Seller", Value: string(e.From)},
			{Name: "Buyer", Value: string(e.To)},
			{Name: "Price", Value: formatPrice(e.Amount)},
		},
	}
}

func (n *discordNotifier) auctionEmbed(e *ledger.Event) *discordgo.MessageEmbed {
	winner := "-"
	if !e.To.IsZero() {
		winner = string(e.To)
	}
	return &discordgo.MessageEmbed{
		Title:       "Auction ended",
		Description: n.tokenUrl(e.TokenId),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Token", Value: strconv.FormatUint(uint64(e.TokenId), 10)},
			{Name: "Auction", Value: strconv.FormatUint(uint64(e.AuctionId), 10)},
			{Name: "Winner", Value: winner},
			{Name: "Highest bid", Value: formatPrice(e.Amount)},
		},
	}
}

func (n *discordNotifier) tokenUrl(id domain.TokenId) string {
	if n.cfg.TokenUrl == "" {
		return ""
	}
	return fmt.Sprintf(n.cfg.TokenUrl, id)
}

func formatPrice(wei *big.Int) string {
	return fmt.Sprintf("%s ETH", amount.FormatEther(wei))
}
