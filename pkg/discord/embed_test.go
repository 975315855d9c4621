package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaguebot/internal/domain/entities"
	"leaguebot/internal/ports/input"
)

func TestBuildEventEmbedEmptyLedger(t *testing.T) {
	event := &entities.EventRecord{
		Title:         "Scrim",
		DisplayTime:   "<t:1754071200:F>\nUTC (UTC)",
		DurationHours: 2,
		Location:      "Main VC",
		CalendarLink:  "https://cal.example/x",
		CreatorName:   "coach",
	}
	embed := BuildEventEmbed(event, &input.LedgerView{
		Going:  []string{"No one yet"},
		Maybe:  []string{"No one yet"},
		Cannot: []string{"No one yet"},
	})

	assert.Equal(t, "📅 **SCRIM**", embed.Title)
	assert.Empty(t, embed.Description)
	require.Len(t, embed.Fields, 8)
	assert.Equal(t, "2 hours", embed.Fields[1].Value)
	assert.Equal(t, "Main VC", embed.Fields[3].Value)
	assert.Equal(t, "✅ Attendees (0)", embed.Fields[4].Name)
	assert.Equal(t, "No one yet", embed.Fields[4].Value)
	assert.Equal(t, "No one yet", embed.Fields[6].Value)
	assert.Equal(t, "[📅 Calendar](https://cal.example/x)", embed.Fields[7].Value)
	assert.Equal(t, "Created by coach", embed.Footer.Text)
}

func TestBuildEventEmbedAttendance(t *testing.T) {
	event := &entities.EventRecord{Title: "Practice", Description: "bring boots", DurationHours: 1}
	view := &input.LedgerView{
		Going:       []string{"<@1>", "<@2>"},
		Maybe:       []string{"No one yet"},
		Cannot:      []string{"<@3>"},
		GoingCount:  2,
		CannotCount: 1,
	}

	embed := BuildEventEmbed(event, view)

	assert.Equal(t, "_bring boots_", embed.Description)
	assert.Equal(t, "1 hour", embed.Fields[1].Value)
	assert.Equal(t, "TBA", embed.Fields[3].Value)
	assert.Equal(t, "✅ Attendees (2)", embed.Fields[4].Name)
	assert.Equal(t, "<@1> | <@2>", embed.Fields[4].Value)
	assert.Equal(t, "🤔 Maybe (0)", embed.Fields[5].Name)
	assert.Equal(t, "❌ No (1)", embed.Fields[6].Name)
	assert.Equal(t, "<@3>", embed.Fields[6].Value)
	assert.Len(t, embed.Fields, 7)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 hour", FormatDuration(1))
	assert.Equal(t, "1.5 hours", FormatDuration(1.5))
	assert.Equal(t, "4 hours", FormatDuration(4))
}

func TestModalValues(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "event_complete_modal",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "event_date_input", Value: "2025-08-01"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "event_location_input", Value: "Stadium"},
			}},
		},
	}
	assert.Equal(t, map[string]string{
		"event_date_input":     "2025-08-01",
		"event_location_input": "Stadium",
	}, ModalValues(data))
}

func TestValueEmbed(t *testing.T) {
	p := entities.PlayerStats{Goals: 10, Shots: 5, Games: 4}
	embed := BuildValueEmbed("striker", p)
	assert.Equal(t, "⚽ striker's Player Value Analysis", embed.Title)
	assert.Equal(t, "**$8,300** | **⚽ Offensive Powerhouse** | **$2,075/Game**", embed.Description)
	assert.Contains(t, embed.Fields[0].Value, "⚽ **90%** █████████░")
	assert.Contains(t, embed.Fields[4].Value, "**Goals:** 2.50")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", Bar(0))
	assert.Equal(t, "███░░░░░░░", Bar(39))
	assert.Equal(t, "██████████", Bar(100))
}
