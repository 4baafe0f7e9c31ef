package cache

import "github.com/go-redis/redis/v8"

// Lua scripts keep the page write + key registration and the invalidation
// sweep atomic on the redis side. The 'lead:keys:' prefix must stay in sync
// with LeadKeysSetKey.
var (
	// ARGV: page key, JSON payload, page TTL seconds, lead IDs...
	setLeadListScript = redis.NewScript(`
		local page_key = ARGV[1]
		local payload = ARGV[2]
		local ttl = tonumber(ARGV[3])
		local registry_ttl = 3600
		redis.call('SET', page_key, payload)
		redis.call('EXPIRE', page_key, ttl)
		for i = 4, #ARGV do
			local registry = 'lead:keys:' .. ARGV[i]
			redis.call('SADD', registry, page_key)
			redis.call('EXPIRE', registry, registry_ttl)
		end
		return 1
	`)

	// ARGV: lead ID. Deletes every registered key, then the registry.
	invalidateLeadCacheScript = redis.NewScript(`
		local registry = 'lead:keys:' .. ARGV[1]
		local keys = redis.call('SMEMBERS', registry)
		if #keys > 0 then
			redis.call('DEL', unpack(keys))
		end
		redis.call('DEL', registry)
		return 1
	`)
)
