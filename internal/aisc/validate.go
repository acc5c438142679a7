package aisc

// Validate runs every applicable design check for the given section and
// loads and assembles the aggregate result. Which checks apply follows
// from the load signs and magnitudes:
//
//   - classification: always
//   - tension:        Pu > 0
//   - compression:    Pu < 0
//   - flexure:        nonzero moment about the corresponding axis
//   - interaction:    compression combined with at least one moment
//
// A nil aggregate slot means the check did not apply.
func Validate(p SectionProperties, loads LoadConditions) (*AggregateResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	class, err := Classify(p)
	if err != nil {
		return nil, err
	}

	result := &AggregateResult{Classification: &class}

	if loads.Pu > 0 {
		result.Tension, err = CheckTension(p, loads)
		if err != nil {
			return nil, err
		}
	}

	if loads.Pu < 0 {
		result.Compression, err = CheckCompression(p, loads)
		if err != nil {
			return nil, err
		}
	}

	if loads.Mux != 0 {
		result.FlexureStrong, err = CheckFlexure(p, loads, StrongAxis)
		if err != nil {
			return nil, err
		}
	}

	if loads.Muy != 0 {
		result.FlexureWeak, err = CheckFlexure(p, loads, WeakAxis)
		if err != nil {
			return nil, err
		}
	}

	if result.Compression != nil && (result.FlexureStrong != nil || result.FlexureWeak != nil) {
		result.Interaction, err = CheckInteraction(loads, result.Compression, result.FlexureStrong, result.FlexureWeak)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
