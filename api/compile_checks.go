package api

var _ IntentStore = (*MemoryIntentStore)(nil)
