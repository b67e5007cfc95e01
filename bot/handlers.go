/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Bracket Bot v1.0\n")
	res.WriteString("`$teams`: shows the teams registered for the current stage of the tournament\n")
	res.WriteString("`$standings`: shows the current standings, ranked by series then game differential\n")
	res.WriteString("`$bracket`: shows every step of the bracket with its result\n")
	res.WriteString("`$bracket step_name`: shows the result of a single step\n")
	res.WriteString("`$h2h team1 team2`: shows every series on record between two teams. There is fuzzy matching on names, and names that contain two or more words need to be encased in \" (e.g. \"The MongolZ\")\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// teamsHandler handles the $teams command with a DiscordSession interface
func (b *Bot) teamsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	teams := b.APIPtr.GetTeams()

	var res strings.Builder
	res.WriteString("Registered teams for this stage are:\n")
	for _, team := range teams {
		res.WriteString(fmt.Sprintf("- %s\n", team))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// standingsHandler handles the $standings command with a DiscordSession interface
func (b *Bot) standingsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.GetStandings(b.Seeding)
	if err != nil {
		log.Println(err)
		res = "An error occured getting the standings"
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// bracketHandler handles the $bracket command with a DiscordSession interface.
// With no argument it reports the whole bracket; with a step name it reports that step only
func (b *Bot) bracketHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args := strings.Fields(message.Content)
	if len(args) < 2 {
		session.ChannelMessageSend(message.ChannelID, b.APIPtr.GetBracketReport(b.Model))
		return
	}

	res, err := b.APIPtr.GetStepReport(b.Model, args[1])
	if err != nil {
		res = fmt.Sprintf("No result for step '%s'. Use $bracket to see all steps", args[1])
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// headToHeadHandler handles the $h2h command with a DiscordSession interface
func (b *Bot) headToHeadHandler(session DiscordSession, message *discordgo.MessageCreate) {
	// Get team names from message
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes) //we use splitter here instead of go's build in splitter because now we can have team names that contain spaces e.g. "Faze Clan" recognised as one team not two
	msg, _ := spaceSplitter.Split(message.Content)
	args := msg[1:]

	if len(args) != 2 {
		session.ChannelMessageSend(message.ChannelID, "$h2h requires exactly two team names")
		return
	}
	for i := range args {
		args[i] = strings.ReplaceAll(args[i], "\"", "")
		args[i] = strings.ReplaceAll(args[i], "“", "")
		args[i] = strings.ReplaceAll(args[i], "”", "")
	}

	res, err := b.APIPtr.GetHeadToHead(args[0], args[1])
	if err != nil {
		log.Println(err)
		res = fmt.Sprintf("An error occured: %s", err)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}
