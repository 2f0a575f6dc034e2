package factory

import (
	"github.com/automoto/lootbound/assets/animations"
	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/config"
)

// newAnimationData looks up the animation library of key. Without a
// catalog every state resolves to a placeholder.
func newAnimationData(env *components.EnvData, key string) components.AnimationData {
	anim := components.AnimationData{
		Key:        key,
		Controller: animations.NewController(),
	}
	if env.Animations != nil {
		anim.Library = env.Animations.Library(key)
	}
	anim.SetAnimation(config.Idle)
	return anim
}
