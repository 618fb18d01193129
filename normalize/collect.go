package normalize

// CollectExtras partitions an entity's fields into canonical and extra.
// Every key outside the canonical set is moved, with its value, into the
// entity's "platform_specific" side-car map and removed from the top
// level. Canonical keys are untouched. Nothing is ever deleted outright:
// source schemas evolve whenever a scraper changes, and an unmapped
// field must survive the trip so a later schema generation can promote
// it.
//
// An existing platform_specific map is merged into, which keeps the
// operation idempotent. If a scraper emitted platform_specific as a
// non-map, the stray value is preserved inside the rebuilt side-car
// under its own key.
func CollectExtras(entity map[string]any, canonical map[string]bool) {
	if entity == nil {
		return
	}

	extras, ok := entity["platform_specific"].(map[string]any)
	if !ok {
		extras = make(map[string]any)
		if stray, present := entity["platform_specific"]; present && stray != nil {
			extras["platform_specific"] = stray
		}
	}

	for key, val := range entity {
		if key == "platform_specific" || canonical[key] {
			continue
		}
		extras[key] = val
		delete(entity, key)
	}

	entity["platform_specific"] = extras
}
