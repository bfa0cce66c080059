package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	if c.Auth.MinPasswordLen < 6 {
		return fmt.Errorf("auth.min_password_len must be at least 6 (got %d)", c.Auth.MinPasswordLen)
	}

	if err := c.Cycle.validate(); err != nil {
		return fmt.Errorf("cycle: %w", err)
	}

	return nil
}

func (c *CycleConfig) validate() error {
	if c.HorizonCycles <= 0 {
		return fmt.Errorf("horizon_cycles must be > 0 (got %d)", c.HorizonCycles)
	}
	if c.DefaultBleedDays <= 0 {
		return fmt.Errorf("default_bleed_days must be > 0 (got %d)", c.DefaultBleedDays)
	}
	if c.OvulationOffset <= 0 {
		return fmt.Errorf("ovulation_offset must be > 0 (got %d)", c.OvulationOffset)
	}
	if c.FertileStartOffset < 0 || c.FertileEndOffset <= c.FertileStartOffset {
		return fmt.Errorf("fertile window offsets invalid: [%d, %d]", c.FertileStartOffset, c.FertileEndOffset)
	}
	if c.MaxCycleLengthDays <= 0 || c.MaxBleedLengthDays <= 0 {
		return fmt.Errorf("max lengths must be > 0 (got cycle=%d, bleed=%d)", c.MaxCycleLengthDays, c.MaxBleedLengthDays)
	}
	if c.MaxBleedLengthDays >= c.MaxCycleLengthDays {
		return fmt.Errorf("max_bleed_length_days (%d) must be below max_cycle_length_days (%d)", c.MaxBleedLengthDays, c.MaxCycleLengthDays)
	}
	return nil
}
