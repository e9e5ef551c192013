package announcer

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain/flow"
	"github.com/x-xyz/nftmarket/domain/market"
)

// embedSender is the part of *discordgo.Session the announcer needs.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type DiscordCfg struct {
	BotToken  string
	ChannelId string
}

type discord struct {
	channelId string
	session   embedSender
}

func NewDiscord(cfg *DiscordCfg) (market.Announcer, error) {
	if cfg.BotToken == "" || cfg.ChannelId == "" {
		return nil, xerrors.New("discord bot token and channel id are required")
	}
	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotToken))
	if err != nil {
		return nil, err
	}
	return &discord{channelId: cfg.ChannelId, session: session}, nil
}

var titles = map[flow.Kind]string{
	flow.KindMint:   "New item listed!",
	flow.KindBuy:    "Item sold!",
	flow.KindResell: "Item relisted!",
}

func (d *discord) Announce(c ctx.Ctx, a market.Announcement) error {
	title, ok := titles[a.Kind]
	if !ok {
		return nil
	}
	msg := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("%s #%s", a.Name, a.TokenId),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Account", Value: string(a.Account)},
			{Name: "Price", Value: fmt.Sprintf("%s ETH", a.Price)},
			{Name: "Transaction", Value: string(a.TxHash)},
		},
	}
	if a.ImageUrl != "" {
		msg.Image = &discordgo.MessageEmbedImage{URL: a.ImageUrl}
	}
	if _, err := d.session.ChannelMessageSendEmbed(d.channelId, msg); err != nil {
		c.WithFields(log.Fields{"err": err, "tokenId": a.TokenId}).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}
