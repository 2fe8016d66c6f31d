package schema

// TableDefinitions are run in order at startup; every statement is
// idempotent. The unique indexes on leads.conversation_id,
// work_orders.lead_id and the partial index on open followup_drafts
// harden the check-then-create guards in the automation engine.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS orgs (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		owner_email VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS chat_accounts (
		id UUID PRIMARY KEY,
		org_id UUID NOT NULL REFERENCES orgs(id),
		provider VARCHAR(64) NOT NULL,
		external_phone_id VARCHAR(64) NOT NULL,
		account_sid VARCHAR(255) NOT NULL DEFAULT '',
		auth_token VARCHAR(255) NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		UNIQUE (provider, external_phone_id)
	)`,

	`CREATE TABLE IF NOT EXISTS contacts (
		id UUID PRIMARY KEY,
		org_id UUID NOT NULL REFERENCES orgs(id),
		handle VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		UNIQUE (org_id, handle)
	)`,

	`CREATE TABLE IF NOT EXISTS conversations (
		id UUID PRIMARY KEY,
		org_id UUID NOT NULL REFERENCES orgs(id),
		contact_id UUID NOT NULL REFERENCES contacts(id),
		last_message_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_conversations_contact
		ON conversations(org_id, contact_id, last_message_at DESC)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id UUID PRIMARY KEY,
		org_id UUID NOT NULL,
		conversation_id UUID NOT NULL REFERENCES conversations(id),
		direction VARCHAR(3) NOT NULL,
		text TEXT NOT NULL,
		sent_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_messages_conversation
		ON messages(conversation_id, sent_at)`,

	`CREATE INDEX IF NOT EXISTS idx_messages_org
		ON messages(org_id, sent_at)`,

	`CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY,
		org_id UUID NOT NULL REFERENCES orgs(id),
		contact_id UUID REFERENCES contacts(id),
		conversation_id UUID REFERENCES conversations(id),
		title VARCHAR(512) NOT NULL,
		stage VARCHAR(16) NOT NULL DEFAULT 'NEW',
		auto_captured BOOLEAN NOT NULL DEFAULT FALSE,
		tags TEXT[] NOT NULL DEFAULT '{}',
		last_message_at TIMESTAMP WITH TIME ZONE,
		last_replied_at TIMESTAMP WITH TIME ZONE,
		price_resistance BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_leads_conversation
		ON leads(conversation_id) WHERE conversation_id IS NOT NULL`,

	`CREATE INDEX IF NOT EXISTS idx_leads_org_stage
		ON leads(org_id, stage)`,

	`CREATE TABLE IF NOT EXISTS followups (
		id UUID PRIMARY KEY,
		lead_id UUID NOT NULL REFERENCES leads(id),
		due_at TIMESTAMP WITH TIME ZONE NOT NULL,
		done_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_followups_due
		ON followups(due_at) WHERE done_at IS NULL`,

	`CREATE TABLE IF NOT EXISTS followup_drafts (
		id UUID PRIMARY KEY,
		lead_id UUID NOT NULL REFERENCES leads(id),
		text TEXT NOT NULL,
		sent_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_followup_drafts_open
		ON followup_drafts(lead_id) WHERE sent_at IS NULL`,

	`CREATE TABLE IF NOT EXISTS quotes (
		id UUID PRIMARY KEY,
		lead_id UUID NOT NULL REFERENCES leads(id),
		status VARCHAR(16) NOT NULL DEFAULT 'DRAFT',
		total DOUBLE PRECISION NOT NULL DEFAULT 0,
		public_id UUID NOT NULL UNIQUE,
		view_count INTEGER NOT NULL DEFAULT 0,
		last_viewed_at TIMESTAMP WITH TIME ZONE,
		inserted_in_chat BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS quote_items (
		id UUID PRIMARY KEY,
		quote_id UUID NOT NULL REFERENCES quotes(id),
		description VARCHAR(512) NOT NULL DEFAULT '',
		qty INTEGER NOT NULL,
		price DOUBLE PRECISION NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_orders (
		id UUID PRIMARY KEY,
		lead_id UUID NOT NULL REFERENCES leads(id),
		org_id UUID NOT NULL REFERENCES orgs(id),
		customer VARCHAR(255) NOT NULL,
		service VARCHAR(512) NOT NULL,
		price DOUBLE PRECISION NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_work_orders_lead
		ON work_orders(lead_id)`,

	`CREATE TABLE IF NOT EXISTS job_queue (
		id UUID PRIMARY KEY,
		topic VARCHAR(64) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		payload JSONB NOT NULL,
		attempts INTEGER NOT NULL DEFAULT 0,
		max_attempts INTEGER NOT NULL DEFAULT 3,
		last_error TEXT,
		next_retry_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		processed_at TIMESTAMP WITH TIME ZONE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_job_queue_fetch
		ON job_queue(topic, status, next_retry_at)`,

	`CREATE TABLE IF NOT EXISTS job_queue_dead_letter (
		id UUID PRIMARY KEY,
		original_entry_id UUID NOT NULL,
		topic VARCHAR(64) NOT NULL,
		payload JSONB NOT NULL,
		final_error TEXT NOT NULL,
		attempts INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		failed_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,
}
