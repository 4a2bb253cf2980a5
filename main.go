package main

import (
	"context"
	"errors"
	"felix/internal/adapters/guild"
	"felix/internal/adapters/handler"
	"felix/internal/adapters/lookup"
	"felix/internal/adapters/sender"
	"felix/internal/core/domain/command"
	"felix/internal/core/port"
	"felix/internal/core/service"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting felix...")

	// optional, secrets usually come from the environment in production
	_ = godotenv.Load()

	setDefaults()
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Warn().Msg("no config file found, using defaults and environment")
	}

	configureLogging()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for _, key := range []string{"discord.bot_token", "giphy.api_key", "wolfram.app_id", "youtube.api_key",
		"nasa.api_key", "ctf.flag"} {
		if viper.GetString(key) == "" {
			log.Warn().Str("key", key).Msg("config value is empty, dependent features will fail")
		}
	}

	session, err := discordgo.New("Bot " + viper.GetString("discord.bot_token"))
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences
	session.StateEnabled = true

	s := sender.NewDiscord(session)
	members := guild.NewDiscord(session, session.State)

	chuck := lookup.NewChuckNorris(viper.GetString("chucknorris.url"))
	statusCodes := service.NewStatusCodeCache(
		lookup.NewStatusPages(viper.GetString("statuscat.url"), viper.GetString("statusdog.url")), chuck)
	statusCodes.Start(ctx)

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for handler in config")
	}

	commandRegistry := &command.Registry{}

	commandRegistry.Register(command.NewGif(
		lookup.NewGiphy(viper.GetString("giphy.url"), viper.GetString("giphy.api_key")), s, "gif"))
	commandRegistry.Register(command.NewSearch(s, "search"))
	commandRegistry.Register(command.NewStackOverflow(s, "stackoverflow"))
	commandRegistry.Register(command.NewHowto(s, "howto"))
	commandRegistry.Register(command.NewLinks(s, "links"))
	commandRegistry.Register(command.NewFaq(s, "faq"))
	commandRegistry.Register(command.NewMemberInfo(command.MemberInfoParams{
		Members:       members,
		Stats:         lookup.NewEMKC(viper.GetString("memberinfo.stats_url")),
		Sender:        s,
		FlaggedRoleID: viper.GetString("memberinfo.flagged_role_id"),
		Command:       "memberinfo",
	}))
	commandRegistry.Register(command.NewQuestion(newAnswerer(), s, "question"))
	commandRegistry.Register(command.NewUrban(lookup.NewUrban(viper.GetString("urban.url")), s, "urban"))
	commandRegistry.Register(command.NewVideo(lookup.NewYouTube(
		viper.GetString("youtube.url"),
		viper.GetString("youtube.api_key"),
		viper.GetString("youtube.channel_id")), s, "video"))
	commandRegistry.Register(command.NewWeather(lookup.NewWttr(viper.GetString("weather.url")), s, "weather"))
	commandRegistry.Register(command.NewRun(s, "run"))
	commandRegistry.Register(command.NewStatusCat(statusCodes, s, "statuscat"))
	commandRegistry.Register(command.NewStatusDog(statusCodes, s, "statusdog"))
	commandRegistry.Register(command.NewChuckNorris(statusCodes, chuck, s, "chucknorris"))
	commandRegistry.Register(command.NewNASA(
		lookup.NewNASA(viper.GetString("nasa.url"), viper.GetString("nasa.api_key")), s, "nasa"))
	commandRegistry.Register(command.NewCheat(lookup.NewCheatSh(viper.GetString("cheat.url")), s, "cheat"))
	commandRegistry.Register(command.NewCtf(s, viper.GetString("ctf.flag"), "ctf"))
	commandRegistry.Register(command.NewDebug(s, statusCodes, "debug"))
	commandRegistry.Register(command.NewInspect(commandRegistry, s, viper.GetString("inspect.repo_url"), "inspect"))

	commandHandler := handler.NewCommand(commandRegistry, viper.GetString("discord.prefix"), handlerTimeout)
	passiveHandler := handler.NewPassive(service.NewPassiveMatcher(service.NewUnitConverter()), s)

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.String()).Int("guilds", len(r.Guilds)).Msg("connected to discord")
	})
	session.AddHandler(commandHandler.Handle)
	session.AddHandler(passiveHandler.Handle)

	err = session.Open()
	if err != nil {
		log.Panic().Err(err).Msg("failed opening discord connection")
	}

	log.Info().Strs("commands", commandRegistry.ListCommands()).Msg("bot listening")
	<-ctx.Done()

	log.Info().Msg("shutting down")
	err = session.Close()
	if err != nil {
		log.Error().Err(err).Msg("failed closing discord connection")
	}
}

func setDefaults() {
	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("bot.pretty_logs", false)
	viper.SetDefault("discord.prefix", "felix ")
	viper.SetDefault("handler.timeout", "30s")

	viper.SetDefault("question.provider", "wolfram")
	viper.SetDefault("openrouter.model", "openai/gpt-4o-mini")
	viper.SetDefault("openrouter.system_prompt",
		"Answer the question in one or two short sentences suitable for a chat message.")

	viper.SetDefault("memberinfo.flagged_role_id", "484183734686318613")
	viper.SetDefault("memberinfo.stats_url", "https://emkc.org/api/v1/stats/discord/messages")
	viper.SetDefault("inspect.repo_url", "https://github.com/engineer-man/felix")
	viper.SetDefault("youtube.channel_id", "UCrUL8K81R4VBzm-KOYwrcxQ")

	viper.SetDefault("giphy.url", "https://api.giphy.com/v1/gifs/search")
	viper.SetDefault("wolfram.url", "https://api.wolframalpha.com/v1/result")
	viper.SetDefault("urban.url", "https://api.urbandictionary.com/v0/define")
	viper.SetDefault("youtube.url", "https://www.googleapis.com/youtube/v3/search")
	viper.SetDefault("weather.url", "https://wttr.in")
	viper.SetDefault("nasa.url", "https://api.nasa.gov/planetary/apod")
	viper.SetDefault("cheat.url", "https://cheat.sh")
	viper.SetDefault("chucknorris.url", "https://api.chucknorris.io/jokes")
	viper.SetDefault("statuscat.url", "https://http.cat/")
	viper.SetDefault("statusdog.url", "https://httpstatusdogs.com/")
}

func configureLogging() {
	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if viper.GetBool("bot.pretty_logs") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	}

	// handlers log through zerolog.Ctx, fall back to the global logger outside a request
	zerolog.DefaultContextLogger = &log.Logger
}

func newAnswerer() port.Answerer {
	switch viper.GetString("question.provider") {
	case "openrouter":
		log.Info().Str("model", viper.GetString("openrouter.model")).Msg("answering questions with openrouter")
		return lookup.NewOpenRouter(
			viper.GetString("openrouter.api_key"),
			viper.GetString("openrouter.model"),
			viper.GetString("openrouter.system_prompt"))
	default:
		return lookup.NewWolfram(viper.GetString("wolfram.url"), viper.GetString("wolfram.app_id"))
	}
}
