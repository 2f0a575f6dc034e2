package config

type AnimationDef struct {
	First         int
	Last          int
	Step          int
	FrameDuration float64 // seconds per frame
	Loop          bool
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:       {First: 0, Last: 6, Step: 1, FrameDuration: 0.1, Loop: true},
		Walk:       {First: 0, Last: 7, Step: 1, FrameDuration: 0.1, Loop: true},
		Run:        {First: 0, Last: 7, Step: 1, FrameDuration: 0.08, Loop: true},
		Sprint:     {First: 0, Last: 7, Step: 1, FrameDuration: 0.06, Loop: true},
		Jump:       {First: 0, Last: 2, Step: 1, FrameDuration: 0.15},
		DoubleJump: {First: 0, Last: 3, Step: 1, FrameDuration: 0.08},
		TripleJump: {First: 0, Last: 5, Step: 1, FrameDuration: 0.06},
		Fall:       {First: 0, Last: 1, Step: 1, FrameDuration: 0.15, Loop: true},
		Attack:     {First: 0, Last: 5, Step: 1, FrameDuration: 0.05},
		Fire:       {First: 0, Last: 4, Step: 1, FrameDuration: 0.05},
		Eat:        {First: 0, Last: 5, Step: 1, FrameDuration: 0.1, Loop: true},
		UseItem:    {First: 0, Last: 3, Step: 1, FrameDuration: 0.1, Loop: true},
		Hurt:       {First: 0, Last: 2, Step: 1, FrameDuration: 0.1},
		Death:      {First: 0, Last: 8, Step: 1, FrameDuration: 0.1},
	},
	// Slimes only hop; everything else falls back.
	"slime": {
		Idle:   {First: 0, Last: 3, Step: 1, FrameDuration: 0.15, Loop: true},
		Walk:   {First: 0, Last: 5, Step: 1, FrameDuration: 0.1, Loop: true},
		Jump:   {First: 0, Last: 2, Step: 1, FrameDuration: 0.1},
		Attack: {First: 0, Last: 3, Step: 1, FrameDuration: 0.08},
		Hurt:   {First: 0, Last: 1, Step: 1, FrameDuration: 0.15},
		Death:  {First: 0, Last: 5, Step: 1, FrameDuration: 0.12},
	},
	"skeleton": {
		Idle:   {First: 0, Last: 5, Step: 1, FrameDuration: 0.12, Loop: true},
		Walk:   {First: 0, Last: 7, Step: 1, FrameDuration: 0.1, Loop: true},
		Run:    {First: 0, Last: 7, Step: 1, FrameDuration: 0.07, Loop: true},
		Jump:   {First: 0, Last: 2, Step: 1, FrameDuration: 0.15},
		Fall:   {First: 0, Last: 1, Step: 1, FrameDuration: 0.15, Loop: true},
		Attack: {First: 0, Last: 5, Step: 1, FrameDuration: 0.06},
		Fire:   {First: 0, Last: 6, Step: 1, FrameDuration: 0.05},
		Hurt:   {First: 0, Last: 2, Step: 1, FrameDuration: 0.1},
		Death:  {First: 0, Last: 9, Step: 1, FrameDuration: 0.1},
	},
	"goblin": {
		Idle:    {First: 0, Last: 5, Step: 1, FrameDuration: 0.12, Loop: true},
		Walk:    {First: 0, Last: 7, Step: 1, FrameDuration: 0.1, Loop: true},
		Run:     {First: 0, Last: 7, Step: 1, FrameDuration: 0.07, Loop: true},
		Jump:    {First: 0, Last: 2, Step: 1, FrameDuration: 0.15},
		Fall:    {First: 0, Last: 1, Step: 1, FrameDuration: 0.15, Loop: true},
		Attack:  {First: 0, Last: 5, Step: 1, FrameDuration: 0.06},
		UseItem: {First: 0, Last: 3, Step: 1, FrameDuration: 0.1, Loop: true},
		Hurt:    {First: 0, Last: 2, Step: 1, FrameDuration: 0.1},
		Death:   {First: 0, Last: 7, Step: 1, FrameDuration: 0.1},
	},
}
