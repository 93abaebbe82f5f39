package temptmp

// RegisterExitHook arms the registry so that RunExitHook removes every
// session still tracked. Repeated calls have no further effect. The hook
// belongs to this registry: separate registries are armed and run
// independently, and the process-wide hook is the one on Default().
func (r *Registry) RegisterExitHook() {
	r.hookOnce.Do(func() {
		r.hookArmed.Store(true)
		r.logger.Debug().Msg("Exit cleanup hook registered")
	})
}

// RunExitHook performs the exit cleanup if the hook was registered. It is
// meant to be deferred from main; only the first call does any work and it
// never panics.
func (r *Registry) RunExitHook() {
	if !r.hookArmed.Load() {
		return
	}

	r.exitOnce.Do(func() {
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Warn().Interface("panic", rec).Msg("Exit cleanup aborted")
			}
		}()

		removed := r.CleanupAll()
		r.logger.Debug().Int("sessions", len(removed)).Msg("Exit cleanup finished")
	})
}

// RegisterExitHook registers the exit hook of the default registry. It is
// installed at most once per process.
func RegisterExitHook() {
	Default().RegisterExitHook()
}

// RunExitHook runs the exit hook of the default registry
func RunExitHook() {
	Default().RunExitHook()
}
