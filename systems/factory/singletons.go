package factory

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/archetypes"
	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		Previous: time.Now(),
	})
	return clock
}

func CreateEvents(ecs *ecs.ECS) *donburi.Entry {
	events := archetypes.Events.Spawn(ecs)
	components.Events.SetValue(events, components.EventsData{})
	return events
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(input, components.InputData{})
	return input
}

func CreateRound(ecs *ecs.ECS) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{
		State: cfg.RoundPlaying,
	})
	return round
}

func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{})
	return audio
}
